package entities

import (
	"strings"
	"time"
)

// PayerType classifies who receives the payment.
type PayerType string

const (
	PayerTypeIndividual   PayerType = "individual"
	PayerTypeOrganization PayerType = "organization"
)

// Submission is the requester's payment form: a flat map of field values
// owned by one author. It is editable at any time; versioning happens in the
// snapshots stored on request records.
type Submission struct {
	ID        string            `json:"id"`
	AuthorID  string            `json:"author_id"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Field returns the trimmed value of a field or an empty string.
func (s Submission) Field(name string) string {
	if s.Fields == nil {
		return ""
	}
	return strings.TrimSpace(s.Fields[name])
}

func (s Submission) PayerType() PayerType {
	if PayerType(strings.ToLower(s.Field("payer_type"))) == PayerTypeOrganization {
		return PayerTypeOrganization
	}
	return PayerTypeIndividual
}
