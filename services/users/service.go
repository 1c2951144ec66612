package users

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/m3rciful/quizbot/core/logger"
	"github.com/m3rciful/quizbot/services/quiz"
)

// Service is the user-record store consumed by the quiz engine, the
// broadcast orchestrator, and the stats command. It satisfies quiz.Store.
type Service struct {
	repo *Repository
}

// NewService wraps the repository.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// UpsertUser registers the user on first contact; re-contact is a no-op.
func (s *Service) UpsertUser(ctx context.Context, p quiz.Profile) error {
	start := time.Now()
	err := s.repo.Upsert(ctx, p.ID, p.Username, p.FirstName, p.LastName)
	logger.Event(ctx, "service.users", levelFor(err), "user.upsert",
		slog.String("status", logger.Status(err)),
		slog.Int64("user_id", p.ID),
		slog.Duration("duration", logger.Took(start)),
	)
	return err
}

// RecordResult persists the completed test outcome.
func (s *Service) RecordResult(ctx context.Context, userID int64, result quiz.Label, answers []quiz.Label) error {
	start := time.Now()
	err := s.repo.RecordResult(ctx, userID, string(result), JoinAnswers(answers))
	logger.Event(ctx, "service.users", levelFor(err), "user.result",
		slog.String("status", logger.Status(err)),
		slog.Int64("user_id", userID),
		slog.String("result", string(result)),
		slog.Duration("duration", logger.Took(start)),
	)
	return err
}

// AllIDs snapshots every known user id.
func (s *Service) AllIDs(ctx context.Context) ([]int64, error) {
	ids, err := s.repo.AllIDs(ctx)
	if err != nil {
		logger.Error(ctx, "service.users", "user.list",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return ids, nil
}

// Stats aggregates the daily registration report data.
type Stats struct {
	Total int
	Today []User
}

// DailyStats reads the totals and today's registrations.
func (s *Service) DailyStats(ctx context.Context) (Stats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	today, err := s.repo.RegisteredToday(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{Total: total, Today: today}, nil
}

// JoinAnswers flattens the ordered label sequence into the stored
// comma-joined form.
func JoinAnswers(answers []quiz.Label) string {
	parts := make([]string, len(answers))
	for i, a := range answers {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}

func levelFor(err error) slog.Level {
	if err != nil {
		return slog.LevelError
	}
	return slog.LevelDebug
}
