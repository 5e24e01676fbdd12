package entities

import "strings"

// SnapshotField is one labelled display value.
type SnapshotField struct {
	Label string `json:"label" dynamodbav:"label"`
	Value string `json:"value" dynamodbav:"value"`
}

// SnapshotSection keeps fields in display order.
type SnapshotSection []SnapshotField

func (s SnapshotSection) Get(label string) (string, bool) {
	for _, f := range s {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing label or appends a new field.
func (s *SnapshotSection) Set(label, value string) {
	for i, f := range *s {
		if f.Label == label {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, SnapshotField{Label: label, Value: value})
}

func (s SnapshotSection) Empty() bool {
	for _, f := range s {
		if strings.TrimSpace(f.Value) != "" {
			return false
		}
	}
	return true
}

// Snapshots groups the payment, service and payout views of a submission.
type Snapshots struct {
	Payment SnapshotSection `json:"payment"`
	Service SnapshotSection `json:"service"`
	Payout  SnapshotSection `json:"payout"`
}

func (s Snapshots) Empty() bool {
	return s.Payment.Empty() && s.Service.Empty() && s.Payout.Empty()
}
