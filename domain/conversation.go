package domain

// Conversation is a derived, per-viewer summary of one thread. It is
// recomputed on demand and never persisted.
//
// LastMessage is nil for an entitled partner who has not written yet.
type Conversation struct {
	Partner     Profile
	LastMessage *Message
	UnreadCount int
}
