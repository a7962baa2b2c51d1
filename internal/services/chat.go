package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"shifa-backend/internal/models"
	"shifa-backend/internal/repository"
)

type userGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type exchangeStore interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.ChatMessage, error)
	RecordExchange(ctx context.Context, userID int64, userMessage, reply string, ceiling int) (int, error)
}

type replyGenerator interface {
	Generate(ctx context.Context, message string) (string, error)
}

type chatMetrics interface {
	RecordExchange()
	RecordGenerateFailure()
	RecordGenerateLatency(d time.Duration)
}

type ChatService struct {
	users     userGetter
	chats     exchangeStore
	generator replyGenerator
	metrics   chatMetrics
	ceiling   int
}

func NewChatService(users userGetter, chats exchangeStore, generator replyGenerator, metrics chatMetrics, ceiling int) *ChatService {
	return &ChatService{
		users:     users,
		chats:     chats,
		generator: generator,
		metrics:   metrics,
		ceiling:   ceiling,
	}
}

// Send runs one chat exchange: quota check, completion call, then a single
// transaction persisting both messages and the counter increment. A failed
// completion call writes nothing.
func (s *ChatService) Send(ctx context.Context, userID int64, message string) (*models.ChatResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "User not found"}
		}
		return nil, err
	}

	if !MayAsk(user.QuestionCount, s.ceiling) {
		return nil, &QuotaError{Message: "Question limit reached"}
	}

	start := time.Now()
	reply, err := s.generator.Generate(ctx, message)
	s.metrics.RecordGenerateLatency(time.Since(start))
	if err != nil {
		s.metrics.RecordGenerateFailure()
		log.Printf("ERROR: completion service failed for user %d: %v", userID, err)
		return nil, &ExternalError{Err: err}
	}

	used, err := s.chats.RecordExchange(ctx, userID, message, reply, s.ceiling)
	if err != nil {
		if errors.Is(err, repository.ErrCeilingReached) {
			// The guarded update matches no row both when a concurrent send
			// hit the ceiling first and when the user was deleted in the
			// meantime; re-read to report the truthful outcome.
			if _, lookupErr := s.users.GetByID(ctx, userID); errors.Is(lookupErr, pgx.ErrNoRows) {
				return nil, &NotFoundError{Message: "User not found"}
			}
			return nil, &QuotaError{Message: "Question limit reached"}
		}
		return nil, err
	}
	s.metrics.RecordExchange()

	return &models.ChatResponse{
		Reply:         reply,
		QuestionsUsed: used,
		QuestionsLeft: s.ceiling - used,
	}, nil
}

// History returns a user's messages in insertion order. Unknown users get an
// empty slice; there is no existence check.
func (s *ChatService) History(ctx context.Context, userID int64) ([]models.HistoryEntry, error) {
	messages, err := s.chats.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.HistoryEntry, 0, len(messages))
	for _, msg := range messages {
		entries = append(entries, models.HistoryEntry{
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return entries, nil
}
