package experience

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wayfarer-app/wayfarer-backend/internal/config"
	"github.com/wayfarer-app/wayfarer-backend/internal/domain"
)

type experienceRepo interface {
	Search(ctx context.Context, f domain.ExperienceFilter) ([]domain.Experience, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*domain.ExperienceDetails, error)
	Create(ctx context.Context, e domain.Experience) (*domain.Experience, error)
	LockActive(ctx context.Context, id uuid.UUID) error
	RecomputeRating(ctx context.Context, id uuid.UUID) (*float64, error)
}

type reviewRepo interface {
	ListByExperience(ctx context.Context, experienceID uuid.UUID, limit, offset int) ([]domain.Review, error)
	Create(ctx context.Context, r domain.Review) (*domain.Review, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements experience discovery, creation and reviews.
type Service struct {
	experiences experienceRepo
	reviews     reviewRepo
	tx          txManager
	cfg         config.SearchConfig
	log         *slog.Logger
}

// NewService creates a new experience service.
func NewService(
	log *slog.Logger,
	experiences experienceRepo,
	reviews reviewRepo,
	tx txManager,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		experiences: experiences,
		reviews:     reviews,
		tx:          tx,
		cfg:         cfg,
		log:         log.With("service", "experience"),
	}
}
