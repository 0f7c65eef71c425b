//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"coachchat/domain"
	"coachchat/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type IMessageRepository interface {
	AddParticipant(ctx context.Context, userID string) error
	Append(ctx context.Context, senderID, receiverID, content, imageURL string) (domain.Message, error)
	ListBetween(ctx context.Context, userA, userB string) ([]domain.Message, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Message, error)
	MarkReadBatch(ctx context.Context, receiverID, senderID string) (int64, error)
	HasContact(ctx context.Context, userA, userB string) (bool, error)
}

// MessageRepository is the append-only record of messages, keyed by the
// unordered participant pair. SQLite runs with a single connection in WAL
// mode, which serializes appends and therefore preserves send order within
// every pair. The AUTOINCREMENT id is the tie-break when two messages land on
// the same timestamp.
type MessageRepository struct {
	db  *sqlx.DB
	log *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS participants (
	user_id  TEXT PRIMARY KEY,
	added_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	pair_key    TEXT NOT NULL,
	sender_id   TEXT NOT NULL REFERENCES participants(user_id),
	receiver_id TEXT NOT NULL REFERENCES participants(user_id),
	content     TEXT NOT NULL DEFAULT '',
	image_url   TEXT NOT NULL DEFAULT '',
	created_at  INTEGER NOT NULL,
	read_flag   INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages(pair_key, created_at, id);
CREATE INDEX IF NOT EXISTS idx_messages_receiver ON messages(receiver_id, sender_id, read_flag);
`

func NewMessageRepository(dbPath string, log *slog.Logger) (*MessageRepository, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &MessageRepository{db: db, log: log}, nil
}

var _ IMessageRepository = (*MessageRepository)(nil)

func (r *MessageRepository) Close() error {
	return r.db.Close()
}

// messageRow mirrors the messages table. Timestamps are stored as unix
// nanoseconds so that ORDER BY created_at sorts numerically.
type messageRow struct {
	ID         int64  `db:"id"`
	SenderID   string `db:"sender_id"`
	ReceiverID string `db:"receiver_id"`
	Content    string `db:"content"`
	ImageURL   string `db:"image_url"`
	CreatedAt  int64  `db:"created_at"`
	ReadFlag   bool   `db:"read_flag"`
}

func toMessage(row messageRow) domain.Message {
	return domain.Message{
		ID:         row.ID,
		SenderID:   row.SenderID,
		ReceiverID: row.ReceiverID,
		Content:    row.Content,
		ImageURL:   row.ImageURL,
		CreatedAt:  time.Unix(0, row.CreatedAt).UTC(),
		Read:       row.ReadFlag,
	}
}

func toMessages(rows []messageRow) []domain.Message {
	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, toMessage(row))
	}
	return messages
}

// AddParticipant registers a user as a valid message endpoint. Idempotent.
// Accounts live elsewhere; the store only needs to know ids so Append can
// reject messages to users that do not exist.
func (r *MessageRepository) AddParticipant(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO participants (user_id, added_at) VALUES (?, ?)`,
		userID, time.Now().UTC().UnixNano())
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return nil
}

// Append persists a new message with a fresh id and server-assigned creation
// instant. Nothing is published here; the service fires the notifier after a
// successful return, so a failed insert can never produce a notification.
func (r *MessageRepository) Append(ctx context.Context, senderID, receiverID, content, imageURL string) (domain.Message, error) {
	if content == "" && imageURL == "" {
		return domain.Message{}, fmt.Errorf("%w: message needs text or an image", errors.ErrValidation)
	}

	var known int
	err := r.db.GetContext(ctx, &known,
		`SELECT COUNT(*) FROM participants WHERE user_id IN (?, ?)`, senderID, receiverID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	wanted := 2
	if senderID == receiverID {
		wanted = 1
	}
	if known < wanted {
		return domain.Message{}, fmt.Errorf("%w: %s or %s", errors.ErrUnknownUser, senderID, receiverID)
	}

	createdAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (pair_key, sender_id, receiver_id, content, image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		domain.PairKey(senderID, receiverID), senderID, receiverID, content, imageURL, createdAt.UnixNano())
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	r.log.Debug("Appended message", "id", id, "sender", senderID, "receiver", receiverID)

	return domain.Message{
		ID:         id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		ImageURL:   imageURL,
		CreatedAt:  createdAt,
	}, nil
}

// ListBetween returns the full thread between two users, ascending by
// (created_at, id). The result is the same regardless of argument order.
func (r *MessageRepository) ListBetween(ctx context.Context, userA, userB string) ([]domain.Message, error) {
	var rows []messageRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, sender_id, receiver_id, content, image_url, created_at, read_flag
		 FROM messages WHERE pair_key = ?
		 ORDER BY created_at ASC, id ASC`,
		domain.PairKey(userA, userB))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return toMessages(rows), nil
}

// ListForUser returns every message the user sent or received, recent first.
// Only the conversation aggregator should depend on this.
func (r *MessageRepository) ListForUser(ctx context.Context, userID string) ([]domain.Message, error) {
	var rows []messageRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, sender_id, receiver_id, content, image_url, created_at, read_flag
		 FROM messages WHERE sender_id = ? OR receiver_id = ?
		 ORDER BY created_at DESC, id DESC`,
		userID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return toMessages(rows), nil
}

// MarkReadBatch flips every unread message from senderID to receiverID to
// read, in one statement. Idempotent: a second call finds nothing unread and
// updates zero rows. A message inserted while the update runs is not seen by
// it and simply stays unread for the next open.
func (r *MessageRepository) MarkReadBatch(ctx context.Context, receiverID, senderID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE messages SET read_flag = 1
		 WHERE receiver_id = ? AND sender_id = ? AND read_flag = 0`,
		receiverID, senderID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return updated, nil
}

// HasContact reports whether any message was ever exchanged between the two
// users, in either direction. The access gate uses it to let a coach reply
// into an existing thread.
func (r *MessageRepository) HasContact(ctx context.Context, userA, userB string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM messages WHERE pair_key = ?)`,
		domain.PairKey(userA, userB))
	if err != nil {
		return false, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return exists, nil
}
