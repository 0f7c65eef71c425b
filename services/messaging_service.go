package services

import (
	"coachchat/contract"
	"coachchat/domain"
	cerrors "coachchat/errors"
	"coachchat/gate"
	"coachchat/moderation"
	"coachchat/projection"
	"coachchat/repositories"
	"coachchat/runtime"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type IMessagingService interface {
	SendMessage(ctx context.Context, cmd domain.SendMessage) (domain.Message, error)
	GetConversations(ctx context.Context, userID string) ([]domain.Conversation, error)
	OpenConversation(ctx context.Context, viewerID, partnerID string) ([]domain.Message, error)
	Subscribe(sink contract.MessageSink) (*runtime.Subscription, error)
	Unsubscribe(sub *runtime.Subscription)
}

// MessagingService is the surface the rest of the product talks to. It wires
// the access gate, moderation, the message store, the conversation
// aggregator, and the realtime notifier.
type MessagingService struct {
	log           *slog.Logger
	messages      repositories.IMessageRepository
	gate          *gate.Gate
	conversations *projection.Aggregator
	notifier      *runtime.Notifier
	moderator     *moderation.Moderator // optional
}

func NewMessagingService(
	log *slog.Logger,
	messages repositories.IMessageRepository,
	gate *gate.Gate,
	conversations *projection.Aggregator,
	notifier *runtime.Notifier,
	moderator *moderation.Moderator,
) *MessagingService {
	return &MessagingService{
		log:           log,
		messages:      messages,
		gate:          gate,
		conversations: conversations,
		notifier:      notifier,
		moderator:     moderator,
	}
}

var _ IMessagingService = (*MessagingService)(nil)

// SendMessage validates and moderates the command, consults the gate, appends
// the message, and fans it out. The notification fires only after the append
// committed, and exactly once per accepted message; notifier-side failures
// never reach the caller, durability does not depend on them.
func (s *MessagingService) SendMessage(ctx context.Context, cmd domain.SendMessage) (domain.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", cerrors.ErrValidation, err)
	}

	content := cmd.Content
	if s.moderator != nil {
		content = s.moderator.Censor(content)
	}

	if !s.gate.CanMessage(ctx, cmd.SenderID, cmd.ReceiverID) {
		return domain.Message{}, cerrors.ErrPermissionDenied
	}

	msg, err := s.messages.Append(ctx, cmd.SenderID, cmd.ReceiverID, content, cmd.ImageURL)
	if err != nil {
		return domain.Message{}, err
	}

	s.notifier.Publish(msg)
	return msg, nil
}

// GetConversations recomputes the viewer's conversation list.
func (s *MessagingService) GetConversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	return s.conversations.Conversations(ctx, userID)
}

// OpenConversation marks every unread message from the partner as read, then
// returns the full thread. This is the only path that flips the read flag; a
// message appended while the batch update runs stays unread for the next
// open.
func (s *MessagingService) OpenConversation(ctx context.Context, viewerID, partnerID string) ([]domain.Message, error) {
	updated, err := s.messages.MarkReadBatch(ctx, viewerID, partnerID)
	if err != nil {
		return nil, err
	}
	if updated > 0 {
		s.log.Debug("Marked messages read",
			"viewer", viewerID, "partner", partnerID, "count", updated)
	}
	return s.messages.ListBetween(ctx, viewerID, partnerID)
}

// Subscribe registers a sink for every newly accepted message. Sinks filter
// by participant identity themselves.
func (s *MessagingService) Subscribe(sink contract.MessageSink) (*runtime.Subscription, error) {
	return s.notifier.Subscribe(sink)
}

func (s *MessagingService) Unsubscribe(sub *runtime.Subscription) {
	s.notifier.Unsubscribe(sub)
}
