package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/SlpAus/royale-coach-backend/internal/platform/gemini"
)

const battleSystemPrompt = `You are an expert Clash Royale coach and battle analyst. You have deep knowledge of:
- All deck archetypes (2.6 Hog Cycle, Log Bait, Golem Beatdown, Lavaloon, X-Bow, Mortar Bait, Bridge Spam, etc.)
- Card interactions and counters
- Elixir management and trade concepts
- Common mistakes players make at different trophy ranges
- Matchup dynamics between deck types
- Tower damage patterns and what they indicate about the battle flow

Your analysis should be specific, actionable, and based on the concrete data available. Focus on what the player can learn and improve.`

// normalizeTag 去掉玩家标签的井号前缀并统一大小写。
func normalizeTag(tag string) string {
	return strings.ToUpper(strings.TrimPrefix(tag, "#"))
}

// avgElixirOf 用目录数据估算一套对战卡组的平均费用，目录中没有的卡牌不计入。
func avgElixirOf(catalog *card.Catalog, cards []BattleCard) float64 {
	total, count := 0, 0
	for _, c := range cards {
		if info := catalog.Resolve(c.Name); info != nil {
			total += info.Elixir
			count++
		}
	}
	if count == 0 {
		return 4.0
	}
	return math.Round(float64(total)/float64(count)*10) / 10
}

func cardNames(cards []BattleCard) string {
	if len(cards) == 0 {
		return "Unknown"
	}
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// towerSummary 把一方的塔血量渲染为提示词片段。
func towerSummary(label string, p *BattleParticipant) string {
	if p == nil || (p.KingTowerHitPoints == nil && len(p.PrincessTowersHitPoints) == 0) {
		return ""
	}
	kingHP := "destroyed"
	if p.KingTowerHitPoints != nil {
		kingHP = fmt.Sprintf("%d", *p.KingTowerHitPoints)
	}
	princessHP := "unknown"
	if len(p.PrincessTowersHitPoints) > 0 {
		parts := make([]string, len(p.PrincessTowersHitPoints))
		for i, hp := range p.PrincessTowersHitPoints {
			parts[i] = fmt.Sprintf("%d", hp)
		}
		princessHP = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("\n%s Tower HP - King: %s, Princess Towers: %s", label, kingHP, princessHP)
}

// buildBattlePrompt 把对战记录渲染为AI复盘的用户提示词。
func buildBattlePrompt(catalog *card.Catalog, battle *Battle, playerTag string) string {
	// 玩家可能在team的任意位置，按标签定位
	var player *BattleParticipant
	for i := range battle.Team {
		if normalizeTag(battle.Team[i].Tag) == normalizeTag(playerTag) {
			player = &battle.Team[i]
			break
		}
	}
	if player == nil && len(battle.Team) > 0 {
		player = &battle.Team[0]
	}
	var opponent *BattleParticipant
	if len(battle.Opponent) > 0 {
		opponent = &battle.Opponent[0]
	}

	playerCrowns, opponentCrowns := 0, 0
	playerCards, opponentCards := "Unknown", "Unknown"
	playerAvg, opponentAvg := 0.0, 0.0
	if player != nil {
		playerCrowns = player.Crowns
		playerCards = cardNames(player.Cards)
		playerAvg = avgElixirOf(catalog, player.Cards)
	}
	if opponent != nil {
		opponentCrowns = opponent.Crowns
		opponentCards = cardNames(opponent.Cards)
		opponentAvg = avgElixirOf(catalog, opponent.Cards)
	}

	result := "DRAW"
	if playerCrowns > opponentCrowns {
		result = "WIN"
	} else if playerCrowns < opponentCrowns {
		result = "LOSS"
	}

	towerAnalysis := towerSummary("Player", player) + towerSummary("Opponent", opponent)
	if towerAnalysis == "" {
		towerAnalysis = "\nNo tower HP data available"
	}

	trophyContext := ""
	if player != nil && player.StartingTrophies > 0 {
		trophyContext = fmt.Sprintf("\nTrophy Range: %d", player.StartingTrophies)
		if player.TrophyChange != nil {
			trophyContext += fmt.Sprintf(" (%+d after battle)", *player.TrophyChange)
		}
	}

	gameMode := battle.GameMode.Name
	if gameMode == "" {
		gameMode = "Unknown"
	}
	arena := battle.Arena.Name
	if arena == "" {
		arena = "Unknown"
	}

	return fmt.Sprintf(`Analyze this Clash Royale battle:

BATTLE RESULT: %s
Final Score: %d - %d crowns

GAME MODE: %s
ARENA: %s
%s

PLAYER'S DECK:
Cards: %s
Average Elixir: %.1f

OPPONENT'S DECK:
Cards: %s
Average Elixir: %.1f

TOWER DAMAGE:%s

Based on this battle data, provide your analysis in the following JSON format:
{
  "summary": "A 2-3 sentence summary of the battle explaining the key reason for the outcome",
  "outcome": "%s",
  "keyFactors": ["Array of 2-4 main factors that determined the outcome"],
  "whatWentWell": ["Array of 2-3 things the player did well or had going for them"],
  "whatCouldImprove": ["Array of 2-3 specific, actionable improvements the player could make"],
  "matchupAnalysis": {
    "playerDeckType": "The archetype/type of the player's deck",
    "opponentDeckType": "The archetype/type of the opponent's deck",
    "matchupFavorability": "favorable/even/unfavorable - from the player's perspective",
    "explanation": "Why this matchup favors one side or is even"
  },
  "tacticalTips": ["Array of 2-3 specific tactical tips for this deck against this opponent type"],
  "deckDoctorRecommendation": "A brief recommendation about whether they should analyze their deck with Deck Doctor and why"
}

Analysis guidelines:
1. Be specific - reference actual cards in the decks
2. Consider the tower HP data to infer what happened during the battle
3. For losses, focus on constructive improvement suggestions rather than criticism
4. For wins, still identify areas that could be improved
5. Base matchup analysis on the actual deck compositions
6. Tactical tips should be specific to the card matchups present

Return ONLY valid JSON, no other text.`,
		result, playerCrowns, opponentCrowns, gameMode, arena, trophyContext,
		playerCards, playerAvg, opponentCards, opponentAvg, towerAnalysis,
		strings.ToLower(result))
}

// AnalyzeBattleWithAI 把一场对战记录交给Gemini复盘。
func AnalyzeBattleWithAI(ctx context.Context, catalog *card.Catalog, battle *Battle, playerTag string) (*BattleAnalysis, error) {
	raw, err := gemini.GenerateJSON(ctx, battleSystemPrompt, buildBattlePrompt(catalog, battle, playerTag))
	if err != nil {
		return nil, err
	}

	var analysis BattleAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("无法解析Gemini复盘结果: %w", err)
	}

	// 校验并归一化模型输出
	if analysis.Summary == "" {
		analysis.Summary = "Unable to generate summary."
	}
	analysis.Outcome = validateOutcome(analysis.Outcome)
	analysis.MatchupAnalysis.MatchupFavorability = validateFavorability(analysis.MatchupAnalysis.MatchupFavorability)
	if analysis.MatchupAnalysis.PlayerDeckType == "" {
		analysis.MatchupAnalysis.PlayerDeckType = "Unknown"
	}
	if analysis.MatchupAnalysis.OpponentDeckType == "" {
		analysis.MatchupAnalysis.OpponentDeckType = "Unknown"
	}
	if analysis.DeckDoctorRecommendation == "" {
		analysis.DeckDoctorRecommendation = "Consider using Deck Doctor to analyze your deck for potential improvements."
	}
	return &analysis, nil
}

func validateOutcome(outcome string) string {
	switch strings.ToLower(outcome) {
	case OutcomeWin, OutcomeLoss, OutcomeDraw:
		return strings.ToLower(outcome)
	}
	return OutcomeDraw
}

func validateFavorability(favorability string) string {
	switch strings.ToLower(favorability) {
	case FavorabilityFavorable, FavorabilityEven, FavorabilityUnfavorable:
		return strings.ToLower(favorability)
	}
	return FavorabilityEven
}
