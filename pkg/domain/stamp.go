package domain

// Stamp carries the registry-assigned identity of a record.
//
// Invariants:
//   - ID is assigned by a registry at creation and never changes
//   - RegisteredOn is the civil date of creation and never changes
//
// Records embed Stamp; values supplied by callers are overwritten on create
// and restored from the stored record on update.
type Stamp struct {
	ID           string `json:"id"`
	RegisteredOn Date   `json:"registeredOn"`
}

// StampRef exposes the embedded stamp so generic registries can assign it.
func (s *Stamp) StampRef() *Stamp {
	return s
}

// Stamped is implemented by every record kept in a registry.
type Stamped interface {
	StampRef() *Stamp
}
