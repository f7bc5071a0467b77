// File: internal/model/champion.go
package model

// Champion is read-only reference data. The table stores the rates as the
// raw scraped strings; the store parses them into these numeric fields.
type Champion struct {
	ID       int     `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Role     string  `db:"role" json:"role"`
	WinRate  float64 `db:"winrate" json:"win_rate"`
	PickRate float64 `db:"pickrate" json:"pick_rate"`
	BanRate  float64 `db:"banrate" json:"ban_rate"`
	Matches  int     `db:"matches" json:"matches"`
}
