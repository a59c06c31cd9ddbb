package domain

// Stats mirrors the /api/estatisticas payload.
type Stats struct {
	TotalAssets   int `json:"total_ativos"`
	OnlineAssets  int `json:"ativos_online"`
	OfflineAssets int `json:"ativos_offline"`
	TotalUsers    int `json:"total_usuarios"`
}

// Availability returns the online percentage, 0 when there are no assets.
func (s Stats) Availability() float64 {
	if s.TotalAssets == 0 {
		return 0
	}
	return float64(s.OnlineAssets) / float64(s.TotalAssets) * 100
}

// TypeCount is one row of the /api/estatisticas/tipos breakdown.
type TypeCount struct {
	Type  string `json:"tipo"`
	Count int    `json:"contagem"`
}
