package model

const (
	TableName  = "groups"
	EntityName = "group"

	StatusActive = "ACTIVE"
)

type GroupProfile struct {
	ID                string `json:"id"`
	GroupName         string `json:"groupName"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	HeadName          string `json:"headName"`
	Status            string `json:"status"`
	BillingPreference string `json:"billingPreference"`
	GroupType         string `json:"groupType,omitempty"`
	OrgName           string `json:"orgName,omitempty"`
}

func (g GroupProfile) RecordID() string {
	return g.ID
}
