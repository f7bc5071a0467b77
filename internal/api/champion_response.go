package api

// swagger:model api.ChampionResponse
type ChampionResponse struct {
	ID       int     `json:"id" example:"1"`
	Name     string  `json:"name" example:"Ahri"`
	Role     string  `json:"role" example:"Mid"`
	WinRate  float64 `json:"win_rate" example:"51.2"`
	PickRate float64 `json:"pick_rate" example:"12.4"`
	BanRate  float64 `json:"ban_rate" example:"5.1"`
	Matches  int     `json:"matches" example:"184203"`
}
