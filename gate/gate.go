// Package gate decides whether a send is permitted. The policy is evaluated
// from externally supplied facts at call time and never cached, since an
// entitlement can expire between two messages.
package gate

import (
	"coachchat/contract"
	"coachchat/domain"
	"context"
	"log/slog"
	"time"
)

// ContactChecker answers whether two users ever exchanged a message. The
// message repository implements it.
type ContactChecker interface {
	HasContact(ctx context.Context, userA, userB string) (bool, error)
}

// Gate is the send-time policy:
//   - a coach may message anyone they have prior contact with, or any student
//     currently entitled to them (so a coach can greet a silent student);
//   - a student may initiate or continue only while holding an active
//     entitlement with the coach.
//
// The check happens at send time only; an expiring entitlement never hides
// history. Lookups run under a timeout and any failure denies, so a slow or
// unavailable entitlement source cannot hang or open the gate.
type Gate struct {
	profiles     contract.ProfileDirectory
	entitlements contract.EntitlementSource
	contacts     ContactChecker
	timeout      time.Duration
	log          *slog.Logger
}

func New(profiles contract.ProfileDirectory, entitlements contract.EntitlementSource, contacts ContactChecker, timeout time.Duration, log *slog.Logger) *Gate {
	return &Gate{
		profiles:     profiles,
		entitlements: entitlements,
		contacts:     contacts,
		timeout:      timeout,
		log:          log,
	}
}

func (g *Gate) CanMessage(ctx context.Context, senderID, receiverID string) bool {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	sender, err := g.profiles.GetProfile(ctx, senderID)
	if err != nil {
		g.log.Warn("Denying send, sender profile lookup failed",
			"sender", senderID, "error", err)
		return false
	}

	if sender.Role == domain.RoleCoach {
		contacted, err := g.contacts.HasContact(ctx, senderID, receiverID)
		if err != nil {
			g.log.Warn("Denying send, contact lookup failed",
				"sender", senderID, "receiver", receiverID, "error", err)
			return false
		}
		if contacted {
			return true
		}
		// No thread yet: the receiver must be an entitled (silent) student.
		entitled, err := g.entitlements.HasActiveEntitlement(ctx, receiverID, senderID)
		if err != nil {
			g.log.Warn("Denying send, entitlement lookup failed",
				"sender", senderID, "receiver", receiverID, "error", err)
			return false
		}
		return entitled
	}

	entitled, err := g.entitlements.HasActiveEntitlement(ctx, senderID, receiverID)
	if err != nil {
		g.log.Warn("Denying send, entitlement lookup failed",
			"sender", senderID, "receiver", receiverID, "error", err)
		return false
	}
	return entitled
}
