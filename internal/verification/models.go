package verification

import "time"

// Collection is the document collection holding verification records.
const Collection = "verifications"

// Status is the recorded outcome of a login verification. A record that does
// not exist yet is reported as StatusPending.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Actions carried by decision links.
const (
	ActionApprove = "approve"
	ActionDeny    = "deny"
)

// StatusForAction maps a decision link action to the status it records.
// Matching is exact and case-sensitive.
func StatusForAction(action string) (Status, bool) {
	switch action {
	case ActionApprove:
		return StatusApproved, true
	case ActionDeny:
		return StatusDenied, true
	}
	return "", false
}

// Record is the persisted decision for one verification id.
type Record struct {
	ID        string     `json:"id" bson:"_id"`
	Status    Status     `json:"status" bson:"status"`
	DecidedAt *time.Time `json:"decidedAt,omitempty" bson:"decidedAt,omitempty"`
}
