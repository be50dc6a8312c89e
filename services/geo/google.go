package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/KennyLightfoot/hmnp-site-sub021/utils"
)

const metersPerMile = 1609.344

// distanceMatrixResponse represents the fields we read from the Google
// Distance Matrix API response.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Meters int `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// GoogleDistanceService measures driving distance from a fixed origin via
// the Google Distance Matrix API, with a Redis cache in front of it.
type GoogleDistanceService struct {
	APIKey string
	Origin string
	HTTP   *http.Client
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewGoogleDistanceService wires the production distance provider.
func NewGoogleDistanceService(apiKey, origin string, cache *redis.Client, logger *zap.Logger) *GoogleDistanceService {
	return &GoogleDistanceService{
		APIKey: apiKey,
		Origin: origin,
		HTTP:   &http.Client{Timeout: 10 * time.Second},
		Cache:  cache,
		Logger: logger,
	}
}

func (s *GoogleDistanceService) DistanceMiles(ctx context.Context, destination string) (float64, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return 0, &DistanceError{Destination: destination, Err: errors.New("empty destination address")}
	}

	cacheKey := utils.DistanceCachePrefix + strings.ToLower(destination)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			if miles, err := strconv.ParseFloat(cached, 64); err == nil {
				return miles, nil
			}
		}
	}

	miles, err := s.lookup(ctx, destination)
	if err != nil {
		return 0, &DistanceError{Destination: destination, Err: err}
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, cacheKey, strconv.FormatFloat(miles, 'f', 2, 64), utils.DistanceCacheTTL).Err(); err != nil {
			s.Logger.Debug("distance cache write failed", zap.Error(err))
		}
	}
	return miles, nil
}

func (s *GoogleDistanceService) lookup(ctx context.Context, destination string) (float64, error) {
	if s.APIKey == "" {
		return 0, errors.New("google api key not configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/distancematrix/json?origins=%s&destinations=%s&units=imperial&key=%s",
		url.QueryEscape(s.Origin), url.QueryEscape(destination), s.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var matrix distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return 0, err
	}
	if matrix.Status != "OK" {
		return 0, fmt.Errorf("distance matrix status %s", matrix.Status)
	}
	if len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return 0, errors.New("distance matrix returned no elements")
	}
	element := matrix.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status %s", element.Status)
	}
	return float64(element.Distance.Meters) / metersPerMile, nil
}
