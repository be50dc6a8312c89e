package booking

import (
	"sort"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

// Catalog is the immutable service-definition lookup injected into both
// engines. Tests construct their own catalogs to exercise pricing edges.
type Catalog map[models.ServiceType]models.ServiceDefinition

// Get returns the definition for a service type or an UnknownServiceError.
func (c Catalog) Get(t models.ServiceType) (models.ServiceDefinition, error) {
	def, ok := c[t]
	if !ok {
		return models.ServiceDefinition{}, &UnknownServiceError{ServiceType: t}
	}
	return def, nil
}

// List returns the catalog entries in a stable order.
func (c Catalog) List() []models.ServiceDefinition {
	defs := make([]models.ServiceDefinition, 0, len(c))
	for _, def := range c {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Type < defs[j].Type })
	return defs
}

// PricingConfig carries the flat surcharge amounts and the administrative
// travel-fee switch. Injected alongside the catalog rather than scattered as
// constants.
type PricingConfig struct {
	AfterHoursSurcharge float64
	WeekendSurcharge    float64
	TravelFeeEnabled    bool
}

// DefaultPricingConfig returns the production surcharge amounts.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		AfterHoursSurcharge: 30,
		WeekendSurcharge:    40,
		TravelFeeEnabled:    true,
	}
}

// DefaultCatalog returns the production service catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		models.ServiceQuickStampLocal: {
			Type:                models.ServiceQuickStampLocal,
			Name:                "Quick Stamp Local",
			BasePrice:           50,
			DurationMinutes:     30,
			IncludedDocuments:   1,
			ExtraDocumentFee:    5,
			IncludedRadiusMiles: 10,
			PerMileRate:         0.50,
			RequiresAddress:     true,
		},
		models.ServiceStandardNotary: {
			Type:                models.ServiceStandardNotary,
			Name:                "Standard Notary",
			BasePrice:           75,
			DurationMinutes:     60,
			IncludedDocuments:   4,
			ExtraDocumentFee:    10,
			IncludedRadiusMiles: 20,
			PerMileRate:         0.50,
			RequiresAddress:     true,
		},
		models.ServiceExtendedHours: {
			Type:                models.ServiceExtendedHours,
			Name:                "Extended Hours",
			BasePrice:           100,
			DurationMinutes:     60,
			IncludedDocuments:   4,
			ExtraDocumentFee:    10,
			IncludedRadiusMiles: 30,
			PerMileRate:         0.50,
			RequiresAddress:     true,
			HoursOverride:       &models.HoursOverride{Start: "07:00", End: "21:00"},
		},
		models.ServiceLoanSigning: {
			Type:                models.ServiceLoanSigning,
			Name:                "Loan Signing",
			BasePrice:           150,
			DurationMinutes:     90,
			IncludedDocuments:   0, // unlimited
			ExtraDocumentFee:    0,
			IncludedRadiusMiles: 30,
			PerMileRate:         0.50,
			RequiresAddress:     true,
		},
		models.ServiceRON: {
			Type:              models.ServiceRON,
			Name:              "Remote Online Notarization",
			BasePrice:         25,
			DurationMinutes:   30,
			IncludedDocuments: 10,
			ExtraDocumentFee:  5,
			RequiresAddress:   false,
			HoursOverride:     &models.HoursOverride{Start: "00:00", End: "23:59"},
		},
		models.ServiceBusinessEssentials: {
			Type:                models.ServiceBusinessEssentials,
			Name:                "Business Essentials",
			BasePrice:           125,
			DurationMinutes:     60,
			IncludedDocuments:   10,
			ExtraDocumentFee:    3,
			IncludedRadiusMiles: 30,
			PerMileRate:         0.50,
			RequiresAddress:     true,
		},
		models.ServiceBusinessGrowth: {
			Type:                models.ServiceBusinessGrowth,
			Name:                "Business Growth",
			BasePrice:           349,
			DurationMinutes:     60,
			IncludedDocuments:   50,
			ExtraDocumentFee:    2,
			IncludedRadiusMiles: 50,
			PerMileRate:         0.25,
			RequiresAddress:     true,
		},
	}
}
