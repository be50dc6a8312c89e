package booking

import (
	"fmt"

	"github.com/KennyLightfoot/hmnp-site-sub021/models"
)

// UnknownServiceError is the hard failure for a service type with no catalog
// entry. It is never silently defaulted.
type UnknownServiceError struct {
	ServiceType models.ServiceType
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service type: %q", e.ServiceType)
}

// InvalidDateError reports a malformed date or datetime input.
type InvalidDateError struct {
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

// BookingError is a request-level booking failure with a stable code the
// HTTP layer can map to a status.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewPastDateError() error {
	return &BookingError{Code: "past_date", Message: "cannot book appointments for past dates"}
}

func NewSlotUnavailableError() error {
	return &BookingError{Code: "slot_unavailable", Message: "the requested time is no longer available"}
}

func NewAddressRequiredError(serviceType models.ServiceType) error {
	return &BookingError{
		Code:    "address_required",
		Message: fmt.Sprintf("an address is required for %s bookings", serviceType),
	}
}
