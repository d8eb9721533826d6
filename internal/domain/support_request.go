package domain

import (
	"strings"
	"time"
)

type SupportRequestStatus string

const (
	SupportRequestStatusActive    SupportRequestStatus = "active"
	SupportRequestStatusFulfilled SupportRequestStatus = "fulfilled"
)

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// ParseUrgency normalizes free-form urgency input. Anything unrecognized sorts as low.
func ParseUrgency(s string) Urgency {
	switch Urgency(strings.ToLower(strings.TrimSpace(s))) {
	case UrgencyHigh:
		return UrgencyHigh
	case UrgencyMedium:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

type SupportRequest struct {
	ID            int32                `json:"id"`
	UserID        int32                `json:"user_id"`
	RequesterName string               `json:"requester_name,omitempty"`
	HoursNeeded   int32                `json:"hours_needed"`
	HoursReceived int32                `json:"hours_received"`
	Status        SupportRequestStatus `json:"status"`
	Urgency       Urgency              `json:"urgency"`
	Reason        string               `json:"reason"`
	CreatedOn     time.Time            `json:"created_on"`
	FulfilledOn   *time.Time           `json:"fulfilled_on,omitempty"`
}

// HoursRemaining is never negative, even when a request was over-funded.
func (r *SupportRequest) HoursRemaining() int32 {
	if r.HoursReceived >= r.HoursNeeded {
		return 0
	}
	return r.HoursNeeded - r.HoursReceived
}

func (r *SupportRequest) IsActive() bool {
	return r.Status == SupportRequestStatusActive
}
