package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "go-bazaar/internal/pkg/chat/domain"
	repository "go-bazaar/internal/pkg/chat/persistence/repository/port"
)

// PgMessageRepository persists the message log in Postgres.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ repository.MessageRepository = (*PgMessageRepository)(nil)

func (r *PgMessageRepository) SaveMessage(ctx context.Context, m chat.Message) (*chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (sender_id, receiver_id, sender_name, receiver_name, body, is_read, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7)
		RETURNING id::text, created_at
	`, m.SenderID, m.ReceiverID, m.SenderName, m.ReceiverName, m.Body, m.IsRead, m.CreatedAt).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgMessageRepository) GetConversation(ctx context.Context, userA, userB string, limit int) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, sender_id::text, receiver_id::text, sender_name, receiver_name, body, is_read, created_at
		FROM messages
		WHERE (sender_id = $1::uuid AND receiver_id = $2::uuid)
		   OR (sender_id = $2::uuid AND receiver_id = $1::uuid)
		ORDER BY created_at DESC
		LIMIT $3
	`, userA, userB, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

func (r *PgMessageRepository) BulkMarkRead(ctx context.Context, senderID, receiverID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgMessageRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE messages
		SET is_read = TRUE
		WHERE sender_id = $1::uuid AND receiver_id = $2::uuid AND is_read = FALSE
	`, senderID, receiverID)
	return err
}

func (r *PgMessageRepository) GetMessage(ctx context.Context, id string) (*chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	var m chat.Message
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, sender_id::text, receiver_id::text, sender_name, receiver_name, body, is_read, created_at
		FROM messages
		WHERE id = $1::uuid
	`, id).Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.SenderName, &m.ReceiverName, &m.Body, &m.IsRead, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgMessageRepository) MarkMessageRead(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgMessageRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE messages SET is_read = TRUE WHERE id = $1::uuid
	`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrMessageNotFound
	}
	return nil
}

func (r *PgMessageRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgMessageRepository: nil pool")
	}
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages WHERE receiver_id = $1::uuid AND is_read = FALSE
	`, userID).Scan(&count)
	return count, err
}

func (r *PgMessageRepository) ListConversationSummaries(ctx context.Context, userID string) ([]chat.ConversationSummary, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		WITH conv AS (
			SELECT m.*,
			       CASE WHEN m.sender_id = $1::uuid THEN m.receiver_id ELSE m.sender_id END AS other_id
			FROM messages m
			WHERE m.sender_id = $1::uuid OR m.receiver_id = $1::uuid
		),
		latest AS (
			SELECT DISTINCT ON (other_id) *
			FROM conv
			ORDER BY other_id, created_at DESC
		),
		unread AS (
			SELECT sender_id AS other_id, COUNT(*) AS unread_count
			FROM messages
			WHERE receiver_id = $1::uuid AND is_read = FALSE
			GROUP BY sender_id
		)
		SELECT l.other_id::text, u.username, u.email,
		       l.id::text, l.sender_id::text, l.receiver_id::text,
		       l.sender_name, l.receiver_name, l.body, l.is_read, l.created_at,
		       COALESCE(un.unread_count, 0)
		FROM latest l
		JOIN users u ON u.id = l.other_id
		LEFT JOIN unread un ON un.other_id = l.other_id
		ORDER BY l.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []chat.ConversationSummary
	for rows.Next() {
		var s chat.ConversationSummary
		if err := rows.Scan(
			&s.UserID, &s.Username, &s.Email,
			&s.LastMessage.ID, &s.LastMessage.SenderID, &s.LastMessage.ReceiverID,
			&s.LastMessage.SenderName, &s.LastMessage.ReceiverName,
			&s.LastMessage.Body, &s.LastMessage.IsRead, &s.LastMessage.CreatedAt,
			&s.UnreadCount,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func scanMessages(rows pgx.Rows) ([]chat.Message, error) {
	var msgs []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.SenderName, &m.ReceiverName, &m.Body, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
