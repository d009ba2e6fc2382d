package replay

import (
	"fmt"
	"math"
	"sort"
)

// 战局模式的严重程度
const (
	PatternSeverityLow    = "low"
	PatternSeverityMedium = "medium"
	PatternSeverityHigh   = "high"
)

// BattlePattern 是从战绩历史中挖掘出的一条行为模式及对应建议。
type BattlePattern struct {
	Pattern        string `json:"pattern"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Severity       string `json:"severity"`
	Occurrences    int    `json:"occurrences"`
}

var patternSeverityRank = map[string]int{
	PatternSeverityHigh:   3,
	PatternSeverityMedium: 2,
	PatternSeverityLow:    1,
}

// wonBattle 判断玩家是否赢下了这场对战。平局按失利计，
// 连败和胜率统计都依赖这个口径。
func wonBattle(b Battle) bool {
	return b.Team[0].Crowns > b.Opponent[0].Crowns
}

// AnalyzeBattlePatterns 从一段战绩历史中挖掘值得提醒玩家的行为模式。
// 战绩按上游API的时间倒序传入，连败检测前先反转为时间正序。
func AnalyzeBattlePatterns(battles []Battle) []BattlePattern {
	patterns := []BattlePattern{}

	valid := make([]Battle, 0, len(battles))
	for _, b := range battles {
		if len(b.Team) > 0 && len(b.Opponent) > 0 {
			valid = append(valid, b)
		}
	}
	if len(valid) == 0 {
		return patterns
	}

	// 模式1: 连败
	chronological := make([]Battle, len(valid))
	for i, b := range valid {
		chronological[len(valid)-1-i] = b
	}
	lossStreak, maxLossStreak := 0, 0
	for _, b := range chronological {
		if wonBattle(b) {
			lossStreak = 0
			continue
		}
		lossStreak++
		if lossStreak > maxLossStreak {
			maxLossStreak = lossStreak
		}
	}
	if maxLossStreak >= 3 {
		patterns = append(patterns, BattlePattern{
			Pattern:        "loss_streak",
			Description:    fmt.Sprintf("You lost %d battles in a row", maxLossStreak),
			Recommendation: "Take a break! Tilt can make you play poorly. Come back with a fresh mindset.",
			Severity:       PatternSeverityHigh,
			Occurrences:    maxLossStreak,
		})
	}

	// 模式2: 同一类卡组下反复失利
	lossArchetypes := make(map[string]int)
	for _, b := range valid {
		if wonBattle(b) {
			continue
		}
		archetype := b.DeckSelection
		if archetype == "" {
			archetype = "unknown"
		}
		lossArchetypes[archetype]++
	}
	archetypes := make([]string, 0, len(lossArchetypes))
	for archetype := range lossArchetypes {
		archetypes = append(archetypes, archetype)
	}
	sort.Strings(archetypes)
	for _, archetype := range archetypes {
		count := lossArchetypes[archetype]
		if count < 3 {
			continue
		}
		patterns = append(patterns, BattlePattern{
			Pattern:        "archetype_weakness",
			Description:    fmt.Sprintf("Lost %d times against %s decks", count, archetype),
			Recommendation: fmt.Sprintf("Study how to counter %s. Check the Counter Guide for specific matchup tips.", archetype),
			Severity:       PatternSeverityMedium,
			Occurrences:    count,
		})
	}

	// 模式3: 一皇冠胜局占比过高，提示打法过于保守
	oneCrownWins, totalWins := 0, 0
	for _, b := range valid {
		if !wonBattle(b) {
			continue
		}
		totalWins++
		if b.Team[0].Crowns == 1 {
			oneCrownWins++
		}
	}
	if totalWins > 0 && float64(oneCrownWins)/float64(totalWins) > 0.7 {
		percent := int(math.Round(float64(oneCrownWins) / float64(totalWins) * 100))
		patterns = append(patterns, BattlePattern{
			Pattern:        "passive_wins",
			Description:    fmt.Sprintf("%d%% of your wins are 1-crown victories", percent),
			Recommendation: "You're playing too defensively. After a successful defense, counter-push aggressively for more crowns.",
			Severity:       PatternSeverityLow,
			Occurrences:    oneCrownWins,
		})
	}

	// 模式4: 整体败率
	// 这里的"败"取严格少于对方皇冠，平局不计入，与连败口径不同
	losses := 0
	for _, b := range valid {
		if b.Team[0].Crowns < b.Opponent[0].Crowns {
			losses++
		}
	}
	lossRate := float64(losses) / float64(len(valid))
	if lossRate > 0.6 {
		patterns = append(patterns, BattlePattern{
			Pattern:        "high_loss_rate",
			Description:    fmt.Sprintf("You've lost %d%% of your recent battles", int(math.Round(lossRate*100))),
			Recommendation: "Your deck might not be working. Try the Deck Doctor to analyze and improve your deck composition.",
			Severity:       PatternSeverityHigh,
			Occurrences:    losses,
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patternSeverityRank[patterns[i].Severity] > patternSeverityRank[patterns[j].Severity]
	})
	return patterns
}
