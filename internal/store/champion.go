package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hextechhub/internal/database"
	"hextechhub/internal/model"

	"github.com/jackc/pgx/v5"
)

// parseRate converts scraped strings like "52,3%" or "52.3" to 52.3.
// Anything unparseable becomes 0.
func parseRate(s string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), "%", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseCount strips every non-digit ("184.203" -> 184203). Unparseable
// input becomes 0.
func parseCount(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return v
}

func scanChampion(row pgx.Row) (*model.Champion, error) {
	c := &model.Champion{}
	var winrate, pickrate, banrate, matches string
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Role,
		&winrate,
		&pickrate,
		&banrate,
		&matches,
	); err != nil {
		return nil, err
	}
	c.WinRate = parseRate(winrate)
	c.PickRate = parseRate(pickrate)
	c.BanRate = parseRate(banrate)
	c.Matches = parseCount(matches)
	return c, nil
}

const championColumns = `id, name, role, winrate, pickrate, banrate, matches`

func listChampions(ctx context.Context, db database.DB, query string, args ...any) ([]model.Champion, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Champion
	for rows.Next() {
		c, err := scanChampion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func ListChampions(ctx context.Context, db database.DB) ([]model.Champion, error) {
	list, err := listChampions(ctx, db,
		`SELECT `+championColumns+` FROM champions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListChampions: %w", err)
	}
	return list, nil
}

func GetChampionByID(ctx context.Context, db database.DB, id int) (*model.Champion, error) {
	row := db.QueryRow(ctx,
		`SELECT `+championColumns+` FROM champions WHERE id = $1`,
		id,
	)
	c, err := scanChampion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetChampionByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetChampionByID: %w", err)
	}
	return c, nil
}

func ListChampionsByRole(ctx context.Context, db database.DB, role string) ([]model.Champion, error) {
	list, err := listChampions(ctx, db,
		`SELECT `+championColumns+` FROM champions WHERE lower(role) = lower($1) ORDER BY id`,
		role,
	)
	if err != nil {
		return nil, fmt.Errorf("ListChampionsByRole: %w", err)
	}
	return list, nil
}
