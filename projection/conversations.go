// Package projection derives per-viewer views from stored messages.
// It reads, groups, and decorates; it never writes to the store or emits
// events.
package projection

import (
	"coachchat/contract"
	"coachchat/domain"
	"context"
	"log/slog"
	"sort"

	"github.com/samber/lo"
)

// MessageSource is the slice of the message store the aggregator needs.
type MessageSource interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Message, error)
}

// Aggregator builds a user's conversation list on demand: one entry per
// partner with the most recent message and the viewer's unread count,
// decorated with the partner's profile. Nothing is cached between calls; a
// new message or a read event simply changes the next computation.
type Aggregator struct {
	source   MessageSource
	profiles contract.ProfileDirectory
	silent   contract.SilentPartnerSource // optional, may be nil
	log      *slog.Logger
}

func NewAggregator(source MessageSource, profiles contract.ProfileDirectory, silent contract.SilentPartnerSource, log *slog.Logger) *Aggregator {
	return &Aggregator{source: source, profiles: profiles, silent: silent, log: log}
}

// Conversations returns the viewer's conversations, most recently active
// first (ties broken by message id). Entitled partners with no messages yet
// follow in stable id order, with a nil LastMessage and a zero unread count.
// A user with no messages and no silent partners gets an empty list, never an
// error. Partners whose profile cannot be resolved are skipped.
func (a *Aggregator) Conversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	messages, err := a.source.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byPartner := lo.GroupBy(messages, func(m domain.Message) string {
		return m.PartnerOf(userID)
	})

	conversations := make([]domain.Conversation, 0, len(byPartner))
	for partnerID, thread := range byPartner {
		profile, err := a.profiles.GetProfile(ctx, partnerID)
		if err != nil {
			a.log.Warn("Skipping conversation, profile lookup failed",
				"viewer", userID, "partner", partnerID, "error", err)
			continue
		}
		last := lo.MaxBy(thread, func(m, other domain.Message) bool {
			return m.After(other)
		})
		unread := lo.CountBy(thread, func(m domain.Message) bool {
			return m.ReceiverID == userID && !m.Read
		})
		conversations = append(conversations, domain.Conversation{
			Partner:     profile,
			LastMessage: &last,
			UnreadCount: unread,
		})
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessage.After(*conversations[j].LastMessage)
	})

	silent, err := a.silentConversations(ctx, userID, byPartner)
	if err != nil {
		return nil, err
	}
	return append(conversations, silent...), nil
}

// silentConversations appends partners supplied by the external silent
// partner source that have no thread with the viewer yet.
func (a *Aggregator) silentConversations(ctx context.Context, userID string, byPartner map[string][]domain.Message) ([]domain.Conversation, error) {
	if a.silent == nil {
		return nil, nil
	}
	partnerIDs, err := a.silent.SilentPartners(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Strings(partnerIDs)

	var conversations []domain.Conversation
	for _, partnerID := range lo.Uniq(partnerIDs) {
		if partnerID == userID {
			continue
		}
		if _, talked := byPartner[partnerID]; talked {
			continue
		}
		profile, err := a.profiles.GetProfile(ctx, partnerID)
		if err != nil {
			a.log.Warn("Skipping silent partner, profile lookup failed",
				"viewer", userID, "partner", partnerID, "error", err)
			continue
		}
		conversations = append(conversations, domain.Conversation{Partner: profile})
	}
	return conversations, nil
}
