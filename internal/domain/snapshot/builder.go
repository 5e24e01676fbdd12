// Package snapshot derives the labelled payment, service and payout views of
// a submission and merges stored snapshots with live values.
package snapshot

import (
	"strings"

	"faepa_workflow/internal/domain/entities"
)

// Build derives the three sections from the current submission fields.
// Empty fields are left out so a later Resolve can fall back to live values.
func Build(sub entities.Submission) entities.Snapshots {
	pt := sub.PayerType()

	var payment entities.SnapshotSection
	for _, d := range paymentFields(pt) {
		v := displayValue(sub, d.key)
		if d.key == FieldPayerType {
			v = payerTypeLabel(pt)
		}
		if v != "" {
			payment = append(payment, entities.SnapshotField{Label: d.label, Value: v})
		}
	}

	return entities.Snapshots{
		Payment: payment,
		Service: section(sub, serviceFields),
		Payout:  section(sub, payoutFields),
	}
}

// Resolve merges a stored snapshot with values derived from the live
// submission. Non-empty stored values always win; payout labels found in the
// payment bucket of older records are moved to the payout section.
func Resolve(stored entities.Snapshots, live entities.Submission) entities.Snapshots {
	derived := Build(live)

	var payment entities.SnapshotSection
	payout := append(entities.SnapshotSection(nil), stored.Payout...)
	for _, f := range stored.Payment {
		if isPayoutLabel(f.Label) {
			if v, _ := payout.Get(f.Label); strings.TrimSpace(v) == "" {
				payout.Set(f.Label, f.Value)
			}
			continue
		}
		payment = append(payment, f)
	}

	pt := live.PayerType()
	if v, ok := payment.Get(LabelPayerType); ok {
		if storedType, known := payerTypeFromLabel(v); known {
			pt = storedType
		}
	}

	return entities.Snapshots{
		Payment: merge(payment, derived.Payment, labels(paymentFields(pt))),
		Service: merge(stored.Service, derived.Service, labels(serviceFields)),
		Payout:  merge(payout, derived.Payout, labels(payoutFields)),
	}
}

// ProviderName is the denormalized listing name of a submission.
func ProviderName(sub entities.Submission) string {
	if sub.PayerType() == entities.PayerTypeOrganization {
		if v := sub.Field(FieldOrganizationName); v != "" {
			return v
		}
	}
	return sub.Field(FieldProviderName)
}

// ProviderValue is the formatted amount shown in listings.
func ProviderValue(sub entities.Submission) string {
	return FormatCurrency(sub.Field(FieldAmount))
}

func section(sub entities.Submission, defs []fieldDef) entities.SnapshotSection {
	var out entities.SnapshotSection
	for _, d := range defs {
		if v := displayValue(sub, d.key); v != "" {
			out = append(out, entities.SnapshotField{Label: d.label, Value: v})
		}
	}
	return out
}

func displayValue(sub entities.Submission, key string) string {
	v := sub.Field(key)
	if key == FieldAmount {
		return FormatCurrency(v)
	}
	return v
}

// merge lays out known labels in order, taking the stored value when it is
// not blank and the derived one otherwise. Unknown stored labels are kept at
// the end in their original order.
func merge(stored, derived entities.SnapshotSection, order []string) entities.SnapshotSection {
	var out entities.SnapshotSection
	known := make(map[string]bool, len(order))
	for _, label := range order {
		known[label] = true
		v, _ := stored.Get(label)
		if strings.TrimSpace(v) == "" {
			v, _ = derived.Get(label)
		}
		if strings.TrimSpace(v) != "" {
			out = append(out, entities.SnapshotField{Label: label, Value: v})
		}
	}
	for _, f := range stored {
		if known[f.Label] || strings.TrimSpace(f.Value) == "" {
			continue
		}
		if _, dup := out.Get(f.Label); dup {
			continue
		}
		out = append(out, f)
	}
	return out
}
