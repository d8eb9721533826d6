package domain

import "time"

type PasswordReset struct {
	Token     string     `json:"-"`
	UserID    int32      `json:"user_id"`
	ExpiresOn time.Time  `json:"expires_on"`
	UsedOn    *time.Time `json:"used_on,omitempty"`
	CreatedOn time.Time  `json:"created_on"`
}

func (p *PasswordReset) Usable(now time.Time) bool {
	return p.UsedOn == nil && now.Before(p.ExpiresOn)
}
