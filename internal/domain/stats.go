package domain

type PlatformStats struct {
	TotalUsers         int32 `json:"total_users"`
	TotalCompanies     int32 `json:"total_companies"`
	TotalDonations     int32 `json:"total_donations"`
	TotalHoursDonated  int64 `json:"total_hours_donated"`
	ActiveRequests     int32 `json:"active_requests"`
	FulfilledRequests  int32 `json:"fulfilled_requests"`
	HoursStillNeeded   int64 `json:"hours_still_needed"`
	UsersNeedingHelp   int32 `json:"users_needing_support"`
	UsersWillingToGive int32 `json:"users_can_donate"`
}

type CompanyStats struct {
	CompanyID         int32  `json:"company_id"`
	CompanyName       string `json:"company_name"`
	MemberCount       int32  `json:"member_count"`
	HoursDonated      int64  `json:"hours_donated"`
	HoursReceived     int64  `json:"hours_received"`
	ActiveRequests    int32  `json:"active_requests"`
	FulfilledRequests int32  `json:"fulfilled_requests"`
}

type DonorRank struct {
	UserID        int32  `json:"user_id"`
	Name          string `json:"name"`
	DonationCount int32  `json:"donation_count"`
	HoursDonated  int64  `json:"hours_donated"`
}

// LedgerDiscrepancy is a support request whose cached hours_received disagrees with its
// donations, or whose status disagrees with its funding.
type LedgerDiscrepancy struct {
	RequestID     int32                `json:"request_id"`
	HoursNeeded   int32                `json:"hours_needed"`
	HoursReceived int32                `json:"hours_received"`
	DonationSum   int64                `json:"donation_sum"`
	Status        SupportRequestStatus `json:"status"`
}

// HoursDrift reports whether hours_received differs from the donation total.
func (d LedgerDiscrepancy) HoursDrift() bool {
	return int64(d.HoursReceived) != d.DonationSum
}

// StatusMismatch reports whether the request is fulfilled without being funded, or funded but still open.
func (d LedgerDiscrepancy) StatusMismatch() bool {
	return (d.Status == SupportRequestStatusFulfilled) != (d.HoursReceived >= d.HoursNeeded)
}
