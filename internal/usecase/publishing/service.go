package publishing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"masthead/internal/domain/entity"
	"masthead/internal/observability/metrics"
	"masthead/internal/observability/tracing"
)

// PublishInput represents the input parameters for publishing a new article.
type PublishInput struct {
	AuthorID   uuid.UUID
	MagazineID uuid.UUID
	Title      string
}

// Service provides publishing use cases over a single registry.
// It handles ID-based addressing, logging, and metrics, and delegates the
// relationship bookkeeping to the entity layer.
type Service struct {
	Registry *entity.Registry
	Logger   *slog.Logger
}

// NewService creates a service over the given registry.
// A nil logger falls back to slog.Default.
func NewService(registry *entity.Registry, logger *slog.Logger) *Service {
	return &Service{Registry: registry, Logger: logger}
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// CreateAuthor creates a new author in the registry.
// Returns a ValidationError if the name is blank.
func (s *Service) CreateAuthor(ctx context.Context, name string) (*entity.Author, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "publishing.CreateAuthor")
	defer span.End()

	author, err := s.Registry.NewAuthor(name)
	if err != nil {
		recordValidationFailure(err)
		return nil, fmt.Errorf("create author: %w", err)
	}

	metrics.UpdateAuthorsTotal(len(s.Registry.Authors()))
	s.logger().InfoContext(ctx, "author created",
		slog.String("author_id", author.ID().String()),
		slog.String("name", author.Name()))
	return author, nil
}

// CreateMagazine creates a new magazine in the registry.
func (s *Service) CreateMagazine(ctx context.Context, name, category string) (*entity.Magazine, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "publishing.CreateMagazine")
	defer span.End()

	magazine, err := s.Registry.NewMagazine(name, category)
	if err != nil {
		recordValidationFailure(err)
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	metrics.UpdateMagazinesTotal(len(s.Registry.Magazines()))
	s.logger().InfoContext(ctx, "magazine created",
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("name", magazine.Name()),
		slog.String("category", magazine.Category()))
	return magazine, nil
}

// PublishArticle creates an article joining the named author and magazine.
// Returns ErrAuthorNotFound or ErrMagazineNotFound for unknown IDs, and a
// ValidationError for a title outside the permitted bound. The registry is
// untouched on any failure.
func (s *Service) PublishArticle(ctx context.Context, in PublishInput) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "publishing.PublishArticle")
	defer span.End()

	author, err := s.Registry.AuthorByID(in.AuthorID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("look up author: %w", err)
	}

	magazine, err := s.Registry.MagazineByID(in.MagazineID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrMagazineNotFound
		}
		return nil, fmt.Errorf("look up magazine: %w", err)
	}

	start := time.Now()
	article, err := author.AddArticle(magazine, in.Title)
	if err != nil {
		recordValidationFailure(err)
		return nil, fmt.Errorf("publish article: %w", err)
	}

	metrics.RecordArticlePublished(magazine.Name(), time.Since(start))
	s.logger().InfoContext(ctx, "article published",
		slog.String("article_id", article.ID().String()),
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()),
		slog.String("title", article.Title()))
	return article, nil
}

// RenameMagazine changes a magazine's name.
// Returns ErrMagazineNotFound for an unknown ID and a ValidationError for a
// name outside the permitted bound.
func (s *Service) RenameMagazine(ctx context.Context, id uuid.UUID, name string) error {
	ctx, span := tracing.GetTracer().Start(ctx, "publishing.RenameMagazine")
	defer span.End()

	magazine, err := s.Registry.MagazineByID(id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrMagazineNotFound
		}
		return fmt.Errorf("look up magazine: %w", err)
	}

	previous := magazine.Name()
	if err := magazine.Rename(name); err != nil {
		recordValidationFailure(err)
		return fmt.Errorf("rename magazine: %w", err)
	}

	s.logger().InfoContext(ctx, "magazine renamed",
		slog.String("magazine_id", id.String()),
		slog.String("from", previous),
		slog.String("to", name))
	return nil
}

// RecategorizeMagazine changes a magazine's category.
// Returns ErrMagazineNotFound for an unknown ID and a ValidationError for a
// blank category.
func (s *Service) RecategorizeMagazine(ctx context.Context, id uuid.UUID, category string) error {
	ctx, span := tracing.GetTracer().Start(ctx, "publishing.RecategorizeMagazine")
	defer span.End()

	magazine, err := s.Registry.MagazineByID(id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrMagazineNotFound
		}
		return fmt.Errorf("look up magazine: %w", err)
	}

	if err := magazine.Recategorize(category); err != nil {
		recordValidationFailure(err)
		return fmt.Errorf("recategorize magazine: %w", err)
	}

	s.logger().InfoContext(ctx, "magazine recategorized",
		slog.String("magazine_id", id.String()),
		slog.String("category", category))
	return nil
}

// GetAuthor retrieves an author by ID.
// Returns ErrAuthorNotFound if the ID is unknown to the registry.
func (s *Service) GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	_, span := tracing.GetTracer().Start(ctx, "publishing.GetAuthor")
	defer span.End()

	author, err := s.Registry.AuthorByID(id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("look up author: %w", err)
	}
	return author, nil
}

// GetMagazine retrieves a magazine by ID.
// Returns ErrMagazineNotFound if the ID is unknown to the registry.
func (s *Service) GetMagazine(ctx context.Context, id uuid.UUID) (*entity.Magazine, error) {
	_, span := tracing.GetTracer().Start(ctx, "publishing.GetMagazine")
	defer span.End()

	magazine, err := s.Registry.MagazineByID(id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrMagazineNotFound
		}
		return nil, fmt.Errorf("look up magazine: %w", err)
	}
	return magazine, nil
}

// ListArticles retrieves all published articles in creation order.
func (s *Service) ListArticles(ctx context.Context) ([]*entity.Article, error) {
	_, span := tracing.GetTracer().Start(ctx, "publishing.ListArticles")
	defer span.End()

	return s.Registry.Articles(), nil
}

// TopPublisher returns the magazine with the most published articles.
// Returns ErrNoPublications when the registry holds no articles.
func (s *Service) TopPublisher(ctx context.Context) (*entity.Magazine, error) {
	_, span := tracing.GetTracer().Start(ctx, "publishing.TopPublisher")
	defer span.End()

	top := s.Registry.TopPublisher()
	if top == nil {
		return nil, ErrNoPublications
	}
	return top, nil
}

// recordValidationFailure feeds the validation metric from a domain error.
func recordValidationFailure(err error) {
	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		metrics.RecordValidationFailure(vErr.Field)
	}
}
