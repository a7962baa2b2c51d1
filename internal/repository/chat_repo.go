package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shifa-backend/internal/models"
)

// ErrCeilingReached is returned by RecordExchange when the conditional
// counter update matches no row: the user hit the question ceiling between
// the advisory check and the commit, or the user row no longer exists.
// Callers that need to tell the two apart re-read the user.
var ErrCeilingReached = errors.New("question ceiling reached")

type ChatRepo struct {
	pool *pgxpool.Pool
}

func NewChatRepo(pool *pgxpool.Pool) *ChatRepo {
	return &ChatRepo{pool: pool}
}

// ListByUser returns a user's messages in insertion order. Unknown users
// yield an empty slice, not an error.
func (r *ChatRepo) ListByUser(ctx context.Context, userID int64) ([]*models.ChatMessage, error) {
	query := `SELECT id, user_id, role, content, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*models.ChatMessage, 0)
	for rows.Next() {
		msg := &models.ChatMessage{}
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

// RecordExchange persists one completed chat exchange: the user's message,
// the assistant's reply, and the question counter increment, all visible
// together or not at all. The counter update is guarded by the ceiling so
// concurrent sends for the same user cannot push question_count past it.
// Returns the updated question count.
func (r *ChatRepo) RecordExchange(ctx context.Context, userID int64, userMessage, reply string, ceiling int) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var used int
	err = tx.QueryRow(ctx, `
		UPDATE users SET question_count = question_count + 1
		WHERE id = $1 AND question_count < $2
		RETURNING question_count`, userID, ceiling,
	).Scan(&used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrCeilingReached
		}
		return 0, err
	}

	if _, err := tx.Exec(ctx,
		"INSERT INTO chat_messages (user_id, role, content) VALUES ($1, $2, $3)",
		userID, models.RoleUser, userMessage,
	); err != nil {
		return 0, err
	}

	if _, err := tx.Exec(ctx,
		"INSERT INTO chat_messages (user_id, role, content) VALUES ($1, $2, $3)",
		userID, models.RoleAssistant, reply,
	); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return used, nil
}
