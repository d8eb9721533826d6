package domain

import "time"

type User struct {
	ID                int32     `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Name              string    `json:"name"`
	CompanyID         *int32    `json:"company_id,omitempty"`
	AvailablePTOHours int32     `json:"available_pto_hours"`
	CanDonate         bool      `json:"can_donate"`
	NeedSupport       bool      `json:"need_support"`
	IsAdmin           bool      `json:"is_admin"`
	CreatedOn         time.Time `json:"created_on"`
	UpdatedOn         time.Time `json:"updated_on"`
}

// UserPatch lists the profile fields a user may change. Nil fields are left untouched.
// ClearCompany detaches the user from their company; it cannot be combined with CompanyID.
type UserPatch struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	CompanyID    *int32  `json:"company_id,omitempty"`
	ClearCompany bool    `json:"clear_company,omitempty"`
	CanDonate    *bool   `json:"can_donate,omitempty"`
	NeedSupport  *bool   `json:"need_support,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.CompanyID == nil && !p.ClearCompany && p.CanDonate == nil && p.NeedSupport == nil
}
