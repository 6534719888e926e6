package model

// Notification is a transport-agnostic message for downstream notifiers.
type Notification struct {
	Content string
}
