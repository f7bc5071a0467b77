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

// fakeUserRow implements pgx.Row for user queries.
type fakeUserRow struct {
	scanErr error
	u       *model.User
	role    string
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 2:
		// CreateUser: id, created_at
		*dest[0].(*int) = r.u.ID
		*dest[1].(*time.Time) = r.u.CreatedAt
	case 8:
		// GetUserByEmail
		*dest[0].(*int) = r.u.ID
		*dest[1].(*string) = r.u.Email
		*dest[2].(*string) = r.u.PasswordHash
		*dest[3].(*string) = r.u.FullName
		*dest[4].(**string) = r.u.RiotID
		*dest[5].(**string) = r.u.Region
		*dest[6].(*string) = r.role
		*dest[7].(*time.Time) = r.u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected number of dest")
	}
	return nil
}

func TestCreateUser(t *testing.T) {
	now := time.Now().UTC()

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{u: &model.User{ID: 7, CreatedAt: now}}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{Email: "a@b.c", Role: model.RoleUser})
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Equal(t, now, u.CreatedAt)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "uk_users_email"}}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{Email: "a@b.c"})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("other error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("boom")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestGetUserByEmail(t *testing.T) {
	riotID := "Alice#EUW"
	sample := &model.User{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: "hash",
		FullName:     "Alice Smith",
		RiotID:       &riotID,
		CreatedAt:    time.Now().UTC(),
	}

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{u: sample, role: "ADMIN"}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		require.Equal(t, model.RoleAdmin, u.Role)
		require.Equal(t, &riotID, u.RiotID)
	})

	t.Run("unknown role string becomes USER", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{u: sample, role: "SUPERVISOR"}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, model.RoleUser, u.Role)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByEmail(context.Background(), db, "nobody@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
