package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KennyLightfoot/hmnp-site-sub021/config"
	bookingRepo "github.com/KennyLightfoot/hmnp-site-sub021/database/repository/booking"
	settingsRepo "github.com/KennyLightfoot/hmnp-site-sub021/database/repository/settings"
	"github.com/KennyLightfoot/hmnp-site-sub021/models"
	"github.com/KennyLightfoot/hmnp-site-sub021/services/geo"
	"github.com/KennyLightfoot/hmnp-site-sub021/utils"
)

// DefaultBookingService wires the pure engines to the settings store, the
// booking collection, the distance provider, the availability cache, and the
// reminder queue.
type DefaultBookingService struct {
	Availability *AvailabilityEngine
	Pricing      *PricingEngine
	Settings     settingsRepo.SettingsRepository
	Bookings     bookingRepo.BookingRepository
	Distance     geo.DistanceService
	Cache        *redis.Client
	Reminders    ReminderScheduler
	Logger       *zap.Logger

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewBookingService constructs the production service.
func NewBookingService(
	settings settingsRepo.SettingsRepository,
	bookings bookingRepo.BookingRepository,
	distance geo.DistanceService,
	cache *redis.Client,
	reminders ReminderScheduler,
	logger *zap.Logger,
) BookingService {
	catalog := DefaultCatalog()
	return &DefaultBookingService{
		Availability: &AvailabilityEngine{Catalog: catalog},
		Pricing:      &PricingEngine{Catalog: catalog, Config: DefaultPricingConfig()},
		Settings:     settings,
		Bookings:     bookings,
		Distance:     distance,
		Cache:        cache,
		Reminders:    reminders,
		Logger:       logger,
		Now:          time.Now,
	}
}

// loadSettings fetches the business settings and resolves the business
// timezone. A settings-store outage falls back to defaults so availability
// stays computable.
func (s *DefaultBookingService) loadSettings(ctx context.Context) (map[string]string, *time.Location) {
	settings, err := s.Settings.GetAll(ctx)
	if err != nil {
		s.Logger.Warn("settings fetch failed, using defaults", zap.Error(err))
		settings = map[string]string{}
	}

	tz := settings[SettingBusinessTimezone]
	if tz == "" {
		tz = config.AppConfig.BusinessTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		s.Logger.Warn("invalid business timezone, using UTC", zap.String("timezone", tz))
		loc = time.UTC
	}
	return settings, loc
}

func availabilityCacheKey(serviceType models.ServiceType, date string) string {
	return utils.AvailabilityCachePrefix + string(serviceType) + ":" + date
}

func (s *DefaultBookingService) GetAvailability(ctx context.Context, serviceType models.ServiceType, date, clientTimezone string) (*models.AvailabilityResult, error) {
	cacheKey := availabilityCacheKey(serviceType, date)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var result models.AvailabilityResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				result.TimezoneInfo.ClientTimezone = clientTimezone
				return &result, nil
			}
		}
	}

	result, err := s.computeAvailability(ctx, serviceType, date)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if b, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, b, utils.AvailabilityCacheTTL).Err(); err != nil {
				s.Logger.Debug("availability cache write failed", zap.Error(err))
			}
		}
	}
	result.TimezoneInfo.ClientTimezone = clientTimezone
	return result, nil
}

// computeAvailability runs the full slot computation, bypassing the cache.
// Booking creation calls it directly so a stale cache entry can never admit a
// conflicting booking.
func (s *DefaultBookingService) computeAvailability(ctx context.Context, serviceType models.ServiceType, date string) (*models.AvailabilityResult, error) {
	def, err := s.Availability.Catalog.Get(serviceType)
	if err != nil {
		return nil, err
	}

	settings, loc := s.loadSettings(ctx)
	day, err := ParseDateInZone(date, loc)
	if err != nil {
		return nil, err
	}

	now := s.Now().In(loc)
	result := &models.AvailabilityResult{
		Date:         date,
		ServiceType:  serviceType,
		Slots:        []models.TimeSlot{},
		ServiceInfo:  &def,
		TimezoneInfo: models.TimezoneInfo{BusinessTimezone: loc.String()},
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if day.Before(today) {
		return nil, NewPastDateError()
	}

	if BlackoutDates(settings)[date] {
		result.Message = "We are unavailable on this date. Please choose another day."
		return result, nil
	}

	hours := HoursForDay(day.Weekday(), settings)
	result.BusinessHours = hoursForService(def, hours)

	nextDay := day.AddDate(0, 0, 1)
	booked, err := s.Bookings.GetForRange(ctx, day, nextDay)
	if err != nil {
		return nil, err
	}
	busy := make([]models.BookedInterval, 0, len(booked))
	for _, b := range booked {
		busy = append(busy, models.BookedInterval{Start: b.ScheduledAt, End: b.EndAt})
	}

	slots, err := s.Availability.ComputeAvailableSlots(AvailabilityInput{
		ServiceType: serviceType,
		Date:        date,
		Location:    loc,
		Hours:       hours,
		Bookings:    busy,
		Now:         now,
		LeadTime:    LeadTime(settings),
	})
	if err != nil {
		return nil, err
	}
	if slots != nil {
		result.Slots = slots
	}
	if len(result.Slots) == 0 && result.Message == "" {
		result.Message = "No availability on this date. Please choose another day."
	}
	return result, nil
}

func (s *DefaultBookingService) Quote(ctx context.Context, req models.QuoteRequest) (*models.PricingBreakdown, error) {
	def, err := s.Pricing.Catalog.Get(req.ServiceType)
	if err != nil {
		return nil, err
	}

	settings, loc := s.loadSettings(ctx)
	scheduledAt := req.ScheduledDateTime.In(loc)

	// The administrative switch overrides the compiled default per request.
	engine := *s.Pricing
	engine.Config.TravelFeeEnabled = TravelFeeEnabled(settings)

	var distance *float64
	if engine.Config.TravelFeeEnabled && def.RequiresAddress && req.Address != "" {
		miles, err := s.Distance.DistanceMiles(ctx, req.Address)
		if err != nil {
			return nil, err
		}
		distance = &miles
	}

	return engine.Quote(QuoteInput{
		ServiceType:   req.ServiceType,
		ScheduledAt:   scheduledAt,
		DocumentCount: req.DocumentCount,
		SignerCount:   req.SignerCount,
		DistanceMiles: distance,
		Hours:         HoursForDay(scheduledAt.Weekday(), settings),
	})
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	def, err := s.Pricing.Catalog.Get(req.ServiceType)
	if err != nil {
		return nil, err
	}
	if def.RequiresAddress && req.Address == "" {
		return nil, NewAddressRequiredError(req.ServiceType)
	}
	if req.DocumentCount < 1 {
		req.DocumentCount = 1
	}
	if req.SignerCount < 1 {
		req.SignerCount = 1
	}

	_, loc := s.loadSettings(ctx)
	start := req.ScheduledDateTime.In(loc)
	date := start.Format("2006-01-02")

	// Recompute availability fresh and require the requested start to be an
	// offered slot. This closes the window between quoting and booking.
	availability, err := s.computeAvailability(ctx, req.ServiceType, date)
	if err != nil {
		return nil, err
	}
	offered := false
	for _, slot := range availability.Slots {
		if slot.StartTime.Equal(start) {
			offered = true
			break
		}
	}
	if !offered {
		return nil, NewSlotUnavailableError()
	}

	quote, err := s.Quote(ctx, models.QuoteRequest{
		ServiceType:       req.ServiceType,
		ScheduledDateTime: req.ScheduledDateTime,
		DocumentCount:     req.DocumentCount,
		SignerCount:       req.SignerCount,
		Address:           req.Address,
	})
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:            uuid.New().String(),
		ServiceType:   req.ServiceType,
		ScheduledAt:   start,
		EndAt:         start.Add(time.Duration(def.DurationMinutes) * time.Minute),
		Address:       req.Address,
		DocumentCount: req.DocumentCount,
		SignerCount:   req.SignerCount,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		TotalPrice:    quote.Total,
		Status:        models.BookingConfirmed,
		CreatedAt:     s.Now(),
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(booking); err != nil {
			s.Logger.Warn("reminder scheduling failed",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	s.invalidateAvailability(ctx, date)
	return &booking, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string, byStaff bool) error {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}

	status := models.BookingCancelledByClient
	if byStaff {
		status = models.BookingCancelledByStaff
	}
	if err := s.Bookings.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	_, loc := s.loadSettings(ctx)
	s.invalidateAvailability(ctx, booking.ScheduledAt.In(loc).Format("2006-01-02"))
	return nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListServices() []models.ServiceDefinition {
	return s.Pricing.Catalog.List()
}

// availabilityCacheKeysForDate lists every cache key a booking write on the
// date can stale. A booked interval blocks all service types, not just the
// booked one.
func availabilityCacheKeysForDate(catalog Catalog, date string) []string {
	keys := make([]string, 0, len(catalog))
	for _, def := range catalog.List() {
		keys = append(keys, availabilityCacheKey(def.Type, date))
	}
	return keys
}

func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	keys := availabilityCacheKeysForDate(s.Availability.Catalog, date)
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		s.Logger.Debug("availability cache invalidation failed", zap.Error(err))
	}
}
