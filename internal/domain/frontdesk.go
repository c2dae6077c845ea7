package domain

import "time"

// DeliveryStatus tracks whether a package has been handed to its recipient.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "Pending"
	DeliveryDelivered DeliveryStatus = "Delivered"
)

// Delivery is a package registered at the gate for a person. RecipientName is
// snapshotted at creation like the ledger does for access events.
type Delivery struct {
	ID            string
	RecipientID   string
	RecipientName string
	Kind          string
	Observations  string
	Status        DeliveryStatus
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}

// Priority of a notice.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Notice is a bulletin published by the administration. ViewedBy records the
// operator accounts that acknowledged it.
type Notice struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	CreatedAt   time.Time
	ViewedBy    []string
}

// ViewedByUser reports whether the given user already acknowledged the notice.
func (n Notice) ViewedByUser(userID string) bool {
	for _, id := range n.ViewedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// OccurrenceStatus tracks incident resolution.
type OccurrenceStatus string

const (
	OccurrencePending  OccurrenceStatus = "Pending"
	OccurrenceResolved OccurrenceStatus = "Resolved"
)

// Occurrence is an incident report filed by an operator.
type Occurrence struct {
	ID          string
	Title       string
	Description string
	Status      OccurrenceStatus
	CreatedAt   time.Time
	ResolvedAt  *time.Time
	Comments    string
}
