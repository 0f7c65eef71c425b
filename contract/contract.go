//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"coachchat/domain"
	"context"
)

// ProfileDirectory resolves user profiles. Profiles live outside the
// messaging core; this is the only way it ever sees them.
type ProfileDirectory interface {
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
}

// EntitlementSource answers whether a student currently holds an active,
// unexpired purchase with a coach. It must reflect expiry state at call
// time, which is why the gate never caches its answers.
type EntitlementSource interface {
	HasActiveEntitlement(ctx context.Context, studentID, coachID string) (bool, error)
}

// SilentPartnerSource lists partners that should appear in a user's
// conversation list even with zero messages exchanged, e.g. a coach's paying
// students who have not written yet. Optional; the aggregator works without
// one.
type SilentPartnerSource interface {
	SilentPartners(ctx context.Context, userID string) ([]string, error)
}

// MessageSink receives newly appended messages from the notifier. Delivery
// is best-effort and unfiltered; sinks discard messages they do not care
// about. A sink must not block for long, the notifier's queue behind it is
// bounded.
type MessageSink interface {
	Consume(ctx context.Context, msg domain.Message) error
}
