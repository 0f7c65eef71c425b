// Package domain contains core concepts of the messaging core.
// This file defines the Message record and its ordering rules.
// Messages are immutable after creation except for the Read flag.
package domain

import (
	"time"
)

// Message is the atomic unit of a conversation. The store assigns ID and
// CreatedAt; clients never set either. IDs are strictly monotonic, so the
// (CreatedAt, ID) pair recovers send order even when two messages share the
// same instant.
type Message struct {
	ID         int64
	SenderID   string
	ReceiverID string
	Content    string
	ImageURL   string
	CreatedAt  time.Time
	Read       bool
}

// PartnerOf returns the other participant of the message from the point of
// view of userID.
func (m Message) PartnerOf(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// After reports whether m was created after other, using ID as the tie-break
// for equal timestamps.
func (m Message) After(other Message) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.After(other.CreatedAt)
	}
	return m.ID > other.ID
}

// PairKey builds the canonical identifier of the unordered participant pair.
// Both argument orders map to the same key.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
