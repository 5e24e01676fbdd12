package entities

// Batch is the implicit grouping of request records sharing a batch id.
// It is derived on read and never stored on its own.
type Batch struct {
	ID      string
	Records []RequestRecord
}

func NewBatch(id string, records []RequestRecord) Batch {
	members := make([]RequestRecord, 0, len(records))
	for _, r := range records {
		if r.BatchID == id {
			members = append(members, r)
		}
	}
	return Batch{ID: id, Records: members}
}

func (b Batch) Empty() bool {
	return len(b.Records) == 0
}

func (b Batch) HasApproved() bool {
	return b.Count(RequestStatusApproved) > 0
}

func (b Batch) AllDecided() bool {
	return !b.Empty() && b.Count(RequestStatusPending) == 0
}

func (b Batch) Count(status RequestStatus) int {
	n := 0
	for _, r := range b.Records {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Submitted reports whether any member already reached finance.
func (b Batch) Submitted() bool {
	for _, r := range b.Records {
		if r.BatchSubmitted {
			return true
		}
	}
	return false
}

func (b Batch) Forwarded() bool {
	for _, r := range b.Records {
		if r.FaepaForwarded {
			return true
		}
	}
	return false
}

// Header returns the first member, which carries the batch title and message.
func (b Batch) Header() RequestRecord {
	if b.Empty() {
		return RequestRecord{}
	}
	return b.Records[0]
}
