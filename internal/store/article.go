package store

import (
	"context"
	"errors"
	"fmt"

	"hextechhub/internal/database"
	"hextechhub/internal/model"

	"github.com/jackc/pgx/v5"
)

const articleColumns = `a.id, a.title, a.content, a.excerpt, a.categories,
	 a.author_id, u.email, a.published, a.created_at, a.updated_at`

func scanArticle(row pgx.Row) (*model.Article, error) {
	a := &model.Article{}
	var excerpt, categories *string
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&excerpt,
		&categories,
		&a.AuthorID,
		&a.AuthorEmail,
		&a.Published,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if excerpt != nil {
		a.Excerpt = *excerpt
	}
	if categories != nil {
		a.Categories = *categories
	}
	return a, nil
}

func CreateArticle(ctx context.Context, db database.DB, a *model.Article) (*model.Article, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO articles (title, content, excerpt, categories, author_id, published)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.Title,
		a.Content,
		a.Excerpt,
		a.Categories,
		a.AuthorID,
		a.Published,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateArticle: %w", err)
	}
	return a, nil
}

func GetArticleByID(ctx context.Context, db database.DB, id int) (*model.Article, error) {
	row := db.QueryRow(ctx,
		`SELECT `+articleColumns+`
		 FROM articles a JOIN users u ON u.id = a.author_id
		 WHERE a.id = $1`,
		id,
	)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetArticleByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetArticleByID: %w", err)
	}
	return a, nil
}

func listArticles(ctx context.Context, db database.DB, where string, args ...any) ([]model.Article, error) {
	rows, err := db.Query(ctx,
		`SELECT `+articleColumns+`
		 FROM articles a JOIN users u ON u.id = a.author_id
		 WHERE `+where,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func ListPublishedArticles(ctx context.Context, db database.DB) ([]model.Article, error) {
	list, err := listArticles(ctx, db, `a.published = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedArticles: %w", err)
	}
	return list, nil
}

func ListArticlesByAuthor(ctx context.Context, db database.DB, authorID int) ([]model.Article, error) {
	list, err := listArticles(ctx, db, `a.author_id = $1`, authorID)
	if err != nil {
		return nil, fmt.Errorf("ListArticlesByAuthor: %w", err)
	}
	return list, nil
}

// UpdateArticle overwrites the mutable fields and refreshes updated_at.
// The author columns are deliberately left alone.
func UpdateArticle(ctx context.Context, db database.DB, a *model.Article) error {
	tag, err := db.Exec(ctx,
		`UPDATE articles
		 SET title = $1, content = $2, excerpt = $3, categories = $4,
		     published = $5, updated_at = now()
		 WHERE id = $6`,
		a.Title,
		a.Content,
		a.Excerpt,
		a.Categories,
		a.Published,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateArticle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateArticle: %w", ErrNotFound)
	}
	return nil
}

func DeleteArticle(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM articles WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteArticle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteArticle: %w", ErrNotFound)
	}
	return nil
}
