package projection

import (
	"coachchat/domain"
	"coachchat/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// sliceSource serves canned messages, newest first like the repository does.
type sliceSource struct {
	messages []domain.Message
}

func (s sliceSource) ListForUser(ctx context.Context, userID string) ([]domain.Message, error) {
	var out []domain.Message
	for i := len(s.messages) - 1; i >= 0; i-- {
		m := s.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func anyProfile(ctrl *gomock.Controller) *mocks.MockProfileDirectory {
	profiles := mocks.NewMockProfileDirectory(ctrl)
	profiles.EXPECT().GetProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID string) (domain.Profile, error) {
			return domain.Profile{ID: userID, DisplayName: "user " + userID}, nil
		}).
		AnyTimes()
	return profiles
}

func message(id int64, sender, receiver, content string, at time.Time, read bool) domain.Message {
	return domain.Message{
		ID:         id,
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  at,
		Read:       read,
	}
}

func Test_Conversations_Groups_And_Counts_Unread(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	at := time.Now().UTC()

	source := sliceSource{messages: []domain.Message{
		message(1, "s1", "c1", "old question", at, true),
		message(2, "c1", "s1", "old answer", at.Add(time.Minute), false),
		message(3, "s2", "c1", "hi coach", at.Add(2*time.Minute), false),
		message(4, "s2", "c1", "are you there?", at.Add(3*time.Minute), false),
	}}

	aggregator := NewAggregator(source, anyProfile(ctrl), nil, log)
	conversations, err := aggregator.Conversations(context.Background(), "c1")
	req.NoError(err)
	req.Len(conversations, 2)

	// Most recently active partner first.
	req.Equal("s2", conversations[0].Partner.ID)
	req.Equal("are you there?", conversations[0].LastMessage.Content)
	req.Equal(2, conversations[0].UnreadCount)

	req.Equal("s1", conversations[1].Partner.ID)
	req.Equal("old answer", conversations[1].LastMessage.Content)
	// The only message addressed to c1 in this thread is already read, and
	// c1's own unread send to s1 does not count.
	req.Equal(0, conversations[1].UnreadCount)

	// The same thread seen from s2's side.
	conversations, err = aggregator.Conversations(context.Background(), "s2")
	req.NoError(err)
	req.Len(conversations, 1)
	req.Equal(0, conversations[0].UnreadCount)
}

func Test_Conversations_Break_Timestamp_Ties_By_Id(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	at := time.Now().UTC()

	source := sliceSource{messages: []domain.Message{
		message(1, "s1", "c1", "first", at, false),
		message(2, "s1", "c1", "second", at, false),
	}}

	aggregator := NewAggregator(source, anyProfile(ctrl), nil, log)
	conversations, err := aggregator.Conversations(context.Background(), "c1")
	req.NoError(err)
	req.Len(conversations, 1)
	req.Equal("second", conversations[0].LastMessage.Content)
}

func Test_Conversations_Appends_Silent_Partners(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	at := time.Now().UTC()

	source := sliceSource{messages: []domain.Message{
		message(1, "s1", "c1", "hello", at, false),
	}}
	silent := mocks.NewMockSilentPartnerSource(ctrl)
	silent.EXPECT().SilentPartners(gomock.Any(), "c1").
		Return([]string{"s3", "s2", "s1"}, nil)

	aggregator := NewAggregator(source, anyProfile(ctrl), silent, log)
	conversations, err := aggregator.Conversations(context.Background(), "c1")
	req.NoError(err)
	req.Len(conversations, 3)

	// s1 already has a thread and must not be duplicated; the silent rest
	// follow in stable order with no last message.
	req.Equal("s1", conversations[0].Partner.ID)
	req.Equal("s2", conversations[1].Partner.ID)
	req.Equal("s3", conversations[2].Partner.ID)
	for _, conversation := range conversations[1:] {
		req.Nil(conversation.LastMessage)
		req.Zero(conversation.UnreadCount)
	}
}

func Test_Conversations_Empty_User_Gets_Empty_List(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	aggregator := NewAggregator(sliceSource{}, anyProfile(ctrl), nil, log)
	conversations, err := aggregator.Conversations(context.Background(), "nobody")
	req.NoError(err)
	req.Empty(conversations)
}

func Test_Conversations_Skips_Unresolvable_Profiles(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	at := time.Now().UTC()

	source := sliceSource{messages: []domain.Message{
		message(1, "s1", "c1", "hello", at, false),
		message(2, "deleted", "c1", "gone", at.Add(time.Minute), false),
	}}
	profiles := mocks.NewMockProfileDirectory(ctrl)
	profiles.EXPECT().GetProfile(gomock.Any(), "s1").
		Return(domain.Profile{ID: "s1"}, nil)
	profiles.EXPECT().GetProfile(gomock.Any(), "deleted").
		Return(domain.Profile{}, fmt.Errorf("profile not found"))

	aggregator := NewAggregator(source, profiles, nil, log)
	conversations, err := aggregator.Conversations(context.Background(), "c1")
	req.NoError(err)
	req.Len(conversations, 1)
	req.Equal("s1", conversations[0].Partner.ID)
}
