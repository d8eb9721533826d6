package domain

import "time"

type Company struct {
	ID                int32     `json:"id"`
	Name              string    `json:"name"`
	AllowCrossCompany bool      `json:"allow_cross_company"`
	MemberCount       int32     `json:"member_count"`
	CreatedOn         time.Time `json:"created_on"`
}

type CompanyPatch struct {
	Name              *string `json:"name,omitempty"`
	AllowCrossCompany *bool   `json:"allow_cross_company,omitempty"`
}

func (p CompanyPatch) IsEmpty() bool {
	return p.Name == nil && p.AllowCrossCompany == nil
}
