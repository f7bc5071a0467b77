package store

import (
	"context"
	"errors"
	"fmt"

	"hextechhub/internal/database"
	"hextechhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, full_name, riot_id, region, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		u.Email,
		u.PasswordHash,
		u.FullName,
		u.RiotID,
		u.Region,
		string(u.Role),
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("CreateUser: %w", ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, full_name, riot_id, region, role, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	var role string
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.RiotID,
		&u.Region,
		&role,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByEmail: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	u.Role = model.ParseRole(role)
	return u, nil
}
