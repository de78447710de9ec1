package session

// Status is the lifecycle state of the single live move-car request of a
// user. Absence of the backing record reads as StatusNone; expiry of the
// record reverts any state back to StatusNone.
type Status string

const (
	StatusNone      Status = "none"
	StatusWaiting   Status = "waiting"
	StatusConfirmed Status = "confirmed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNone, StatusWaiting, StatusConfirmed:
		return true
	}
	return false
}

// Snapshot is what a poll observes: the current status and, once the owner
// has confirmed, the owner's placed location.
type Snapshot struct {
	Status        Status
	OwnerLocation *PlacedLocation
}
