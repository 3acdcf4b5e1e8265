package publishing

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masthead/internal/domain/entity"
)

func newTestService() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(entity.NewRegistry(), logger)
}

func TestService_CreateAuthor(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	author, err := svc.CreateAuthor(ctx, "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", author.Name())

	got, err := svc.GetAuthor(ctx, author.ID())
	require.NoError(t, err)
	assert.Same(t, author, got)
}

func TestService_CreateAuthor_BlankName(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateAuthor(context.Background(), "")

	var vErr *entity.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
	assert.Empty(t, svc.Registry.Authors())
}

func TestService_CreateMagazine(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	magazine, err := svc.CreateMagazine(ctx, "Tech Weekly", "Technology")
	require.NoError(t, err)
	assert.Equal(t, "Tech Weekly", magazine.Name())
	assert.Equal(t, "Technology", magazine.Category())

	got, err := svc.GetMagazine(ctx, magazine.ID())
	require.NoError(t, err)
	assert.Same(t, magazine, got)
}

func TestService_PublishArticle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ada, err := svc.CreateAuthor(ctx, "Ada")
	require.NoError(t, err)
	tech, err := svc.CreateMagazine(ctx, "Tech Weekly", "Technology")
	require.NoError(t, err)

	article, err := svc.PublishArticle(ctx, PublishInput{
		AuthorID:   ada.ID(),
		MagazineID: tech.ID(),
		Title:      "The Future of AI",
	})
	require.NoError(t, err)
	assert.Same(t, ada, article.Author())
	assert.Same(t, tech, article.Magazine())
	assert.Equal(t, "The Future of AI", article.Title())

	articles, err := svc.ListArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Article{article}, articles)
}

func TestService_PublishArticle_Errors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ada, err := svc.CreateAuthor(ctx, "Ada")
	require.NoError(t, err)
	tech, err := svc.CreateMagazine(ctx, "Tech Weekly", "Technology")
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   PublishInput
		wantErr error
	}{
		{
			name: "unknown author",
			input: PublishInput{
				AuthorID:   uuid.New(),
				MagazineID: tech.ID(),
				Title:      "The Future of AI",
			},
			wantErr: ErrAuthorNotFound,
		},
		{
			name: "unknown magazine",
			input: PublishInput{
				AuthorID:   ada.ID(),
				MagazineID: uuid.New(),
				Title:      "The Future of AI",
			},
			wantErr: ErrMagazineNotFound,
		},
		{
			name: "invalid title",
			input: PublishInput{
				AuthorID:   ada.ID(),
				MagazineID: tech.ID(),
				Title:      "AI",
			},
			wantErr: entity.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := svc.Registry.ArticleCount()

			article, err := svc.PublishArticle(ctx, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, article)
			assert.Equal(t, before, svc.Registry.ArticleCount())
		})
	}
}

func TestService_RenameMagazine(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tech, err := svc.CreateMagazine(ctx, "Tech Weekly", "Technology")
	require.NoError(t, err)

	require.NoError(t, svc.RenameMagazine(ctx, tech.ID(), "Tech Today"))
	assert.Equal(t, "Tech Today", tech.Name())

	err = svc.RenameMagazine(ctx, tech.ID(), "T")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
	assert.Equal(t, "Tech Today", tech.Name())

	err = svc.RenameMagazine(ctx, uuid.New(), "Tech Today")
	assert.ErrorIs(t, err, ErrMagazineNotFound)
}

func TestService_RecategorizeMagazine(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tech, err := svc.CreateMagazine(ctx, "Tech Weekly", "Technology")
	require.NoError(t, err)

	require.NoError(t, svc.RecategorizeMagazine(ctx, tech.ID(), "Science"))
	assert.Equal(t, "Science", tech.Category())

	err = svc.RecategorizeMagazine(ctx, tech.ID(), " ")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	err = svc.RecategorizeMagazine(ctx, uuid.New(), "Science")
	assert.ErrorIs(t, err, ErrMagazineNotFound)
}

func TestService_Lookups_Unknown(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.GetAuthor(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrAuthorNotFound)

	_, err = svc.GetMagazine(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrMagazineNotFound)
}

func TestService_TopPublisher(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.TopPublisher(ctx)
	assert.ErrorIs(t, err, ErrNoPublications)

	ada, err := svc.CreateAuthor(ctx, "Ada")
	require.NoError(t, err)
	tech, err := svc.CreateMagazine(ctx, "Tech Weekly", "Technology")
	require.NoError(t, err)
	health, err := svc.CreateMagazine(ctx, "Wellness", "Health")
	require.NoError(t, err)

	for _, title := range []string{"The Future of AI", "Exploring Robotics"} {
		_, err = svc.PublishArticle(ctx, PublishInput{AuthorID: ada.ID(), MagazineID: tech.ID(), Title: title})
		require.NoError(t, err)
	}
	_, err = svc.PublishArticle(ctx, PublishInput{AuthorID: ada.ID(), MagazineID: health.ID(), Title: "Healthy Living Tips"})
	require.NoError(t, err)

	top, err := svc.TopPublisher(ctx)
	require.NoError(t, err)
	assert.Same(t, tech, top)
}

func TestService_NilLoggerFallsBack(t *testing.T) {
	svc := NewService(entity.NewRegistry(), nil)

	_, err := svc.CreateAuthor(context.Background(), "Ada")
	require.NoError(t, err)
}
