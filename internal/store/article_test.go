package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"hextechhub/internal/database"
	"hextechhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeArticleRow implements pgx.Row for article queries.
type fakeArticleRow struct {
	scanErr error
	a       *model.Article
}

func scanArticleDest(a *model.Article, dest []any) {
	*dest[0].(*int) = a.ID
	*dest[1].(*string) = a.Title
	*dest[2].(*string) = a.Content
	excerpt := a.Excerpt
	categories := a.Categories
	*dest[3].(**string) = &excerpt
	*dest[4].(**string) = &categories
	*dest[5].(*int) = a.AuthorID
	*dest[6].(*string) = a.AuthorEmail
	*dest[7].(*bool) = a.Published
	*dest[8].(*time.Time) = a.CreatedAt
	*dest[9].(*time.Time) = a.UpdatedAt
}

func (r *fakeArticleRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 3:
		// CreateArticle: id, created_at, updated_at
		*dest[0].(*int) = r.a.ID
		*dest[1].(*time.Time) = r.a.CreatedAt
		*dest[2].(*time.Time) = r.a.UpdatedAt
	case 10:
		scanArticleDest(r.a, dest)
	default:
		panic("fakeArticleRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeArticleRows implements pgx.Rows over a fixed slice.
type fakeArticleRows struct {
	data []model.Article
	idx  int
	err  error
}

func (r *fakeArticleRows) Close()                                       {}
func (r *fakeArticleRows) Err() error                                   { return r.err }
func (r *fakeArticleRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeArticleRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeArticleRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeArticleRows) Scan(dest ...any) error {
	a := r.data[r.idx]
	r.idx++
	scanArticleDest(&a, dest)
	return nil
}
func (r *fakeArticleRows) Values() ([]any, error) { return nil, nil }
func (r *fakeArticleRows) RawValues() [][]byte    { return nil }
func (r *fakeArticleRows) Conn() *pgx.Conn        { return nil }

func sampleArticle() *model.Article {
	now := time.Now().UTC()
	return &model.Article{
		ID:          3,
		Title:       "Patch notes",
		Content:     "long content",
		Excerpt:     "long content",
		Categories:  "jungle,meta",
		AuthorID:    1,
		AuthorEmail: "alice@example.com",
		Published:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateArticle(t *testing.T) {
	sample := sampleArticle()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeArticleRow{a: sample}
		},
	}
	a, err := CreateArticle(context.Background(), db, &model.Article{Title: "Patch notes"})
	require.NoError(t, err)
	require.Equal(t, 3, a.ID)
	require.False(t, a.CreatedAt.IsZero())
}

func TestGetArticleByID(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		sample := sampleArticle()
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeArticleRow{a: sample}
			},
		}
		a, err := GetArticleByID(context.Background(), db, 3)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", a.AuthorEmail)
		require.Equal(t, "jungle,meta", a.Categories)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeArticleRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetArticleByID(context.Background(), db, 99)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListArticles(t *testing.T) {
	sample := sampleArticle()

	t.Run("published", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeArticleRows{data: []model.Article{*sample, *sample}}, nil
			},
		}
		list, err := ListPublishedArticles(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("by author", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{1}, args)
				return &fakeArticleRows{data: []model.Article{*sample}}, nil
			},
		}
		list, err := ListArticlesByAuthor(context.Background(), db, 1)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ListPublishedArticles(context.Background(), db)
		require.Error(t, err)
	})
}

func TestUpdateArticle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateArticle(context.Background(), db, sampleArticle()))
	})

	t.Run("missing row", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		require.ErrorIs(t, UpdateArticle(context.Background(), db, sampleArticle()), ErrNotFound)
	})
}

func TestDeleteArticle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteArticle(context.Background(), db, 3))
	})

	t.Run("missing row", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteArticle(context.Background(), db, 99), ErrNotFound)
	})
}
