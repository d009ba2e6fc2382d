package replay

// BattleParticipant 是一场对战中的一方玩家及其战后数据。
type BattleParticipant struct {
	Tag                     string       `json:"tag"`
	Name                    string       `json:"name"`
	StartingTrophies        int          `json:"startingTrophies"`
	TrophyChange            *int         `json:"trophyChange"`
	Crowns                  int          `json:"crowns"`
	KingTowerHitPoints      *int         `json:"kingTowerHitPoints"`
	PrincessTowersHitPoints []int        `json:"princessTowersHitPoints"`
	Cards                   []BattleCard `json:"cards"`
}

// BattleCard 是对战记录中的一张卡牌。
type BattleCard struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Battle 是一场对战的完整记录，结构与游戏官方API的对战日志一致。
type Battle struct {
	Type       string `json:"type"`
	BattleTime string `json:"battleTime"`
	Arena      struct {
		Name string `json:"name"`
	} `json:"arena"`
	GameMode struct {
		Name string `json:"name"`
	} `json:"gameMode"`
	DeckSelection string              `json:"deckSelection,omitempty"`
	Team          []BattleParticipant `json:"team"`
	Opponent      []BattleParticipant `json:"opponent"`
}

// 对战结果
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeDraw = "draw"
)

// 对局优劣势(从玩家视角)
const (
	FavorabilityFavorable   = "favorable"
	FavorabilityEven        = "even"
	FavorabilityUnfavorable = "unfavorable"
)

// MatchupAnalysis 是双方卡组的对位分析。
type MatchupAnalysis struct {
	PlayerDeckType       string `json:"playerDeckType"`
	OpponentDeckType     string `json:"opponentDeckType"`
	MatchupFavorability  string `json:"matchupFavorability"`
	Explanation          string `json:"explanation"`
}

// BattleAnalysis 是AI对战复盘的结果。
type BattleAnalysis struct {
	Summary                  string          `json:"summary"`
	Outcome                  string          `json:"outcome"`
	KeyFactors               []string        `json:"keyFactors"`
	WhatWentWell             []string        `json:"whatWentWell"`
	WhatCouldImprove         []string        `json:"whatCouldImprove"`
	MatchupAnalysis          MatchupAnalysis `json:"matchupAnalysis"`
	TacticalTips             []string        `json:"tacticalTips"`
	DeckDoctorRecommendation string          `json:"deckDoctorRecommendation"`
}
