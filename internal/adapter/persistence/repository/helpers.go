package repository

import (
	"time"

	"faepa_workflow/internal/domain/entities"
)

// formatTime stores unset timestamps as an empty string.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func sectionOrEmpty(s entities.SnapshotSection) []entities.SnapshotField {
	if s == nil {
		return []entities.SnapshotField{}
	}
	return s
}

func cloneSection(s entities.SnapshotSection) entities.SnapshotSection {
	if s == nil {
		return nil
	}
	out := make(entities.SnapshotSection, len(s))
	copy(out, s)
	return out
}

// cloneRecord detaches the snapshot slices so callers cannot alias stored state.
func cloneRecord(r entities.RequestRecord) entities.RequestRecord {
	r.SnapshotPayment = cloneSection(r.SnapshotPayment)
	r.SnapshotService = cloneSection(r.SnapshotService)
	r.SnapshotPayout = cloneSection(r.SnapshotPayout)
	return r
}
