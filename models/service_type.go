package models

// ServiceType identifies one of the bookable notary service offerings.
type ServiceType string

const (
	ServiceQuickStampLocal    ServiceType = "QUICK_STAMP_LOCAL"
	ServiceStandardNotary     ServiceType = "STANDARD_NOTARY"
	ServiceExtendedHours      ServiceType = "EXTENDED_HOURS"
	ServiceLoanSigning        ServiceType = "LOAN_SIGNING"
	ServiceRON                ServiceType = "RON_SERVICES"
	ServiceBusinessEssentials ServiceType = "BUSINESS_ESSENTIALS"
	ServiceBusinessGrowth     ServiceType = "BUSINESS_GROWTH"
)

// HoursOverride replaces the posted business hours for services that keep
// their own schedule (extended-hours, remote online notarization).
type HoursOverride struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// ServiceDefinition is the static catalog entry for a service type. The
// catalog is injected into the engines at construction so tests can swap it.
type ServiceDefinition struct {
	Type                ServiceType    `json:"serviceType"`
	Name                string         `json:"name"`
	BasePrice           float64        `json:"basePrice"`
	DurationMinutes     int            `json:"durationMinutes"`
	IncludedDocuments   int            `json:"includedDocuments"` // 0 means unlimited
	ExtraDocumentFee    float64        `json:"extraDocumentFee"`  // per document beyond IncludedDocuments
	IncludedRadiusMiles float64        `json:"includedRadiusMiles"`
	PerMileRate         float64        `json:"perMileRate"`
	RequiresAddress     bool           `json:"requiresAddress"`
	HoursOverride       *HoursOverride `json:"hoursOverride,omitempty"`
}
