package domain

import "time"

// Donation is an immutable ledger entry moving hours from a donor to a support request.
type Donation struct {
	ID        int32     `json:"id"`
	DonorID   int32     `json:"donor_id"`
	DonorName string    `json:"donor_name,omitempty"`
	RequestID int32     `json:"request_id"`
	Hours     int32     `json:"hours"`
	Message   string    `json:"message,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

// DonationReceipt is what the ledger reports after a committed donation.
type DonationReceipt struct {
	Donation            Donation       `json:"donation"`
	Request             SupportRequest `json:"request"`
	DonorRemainingHours int32          `json:"donor_remaining_hours"`
}

// Fulfilled reports whether this donation closed the request.
func (r *DonationReceipt) Fulfilled() bool {
	return r.Request.Status == SupportRequestStatusFulfilled
}
