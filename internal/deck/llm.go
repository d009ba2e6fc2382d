package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/SlpAus/royale-coach-backend/internal/card"
	"github.com/SlpAus/royale-coach-backend/internal/platform/gemini"
)

// SwapRecommendation 是AI分析给出的单条换卡建议。
type SwapRecommendation struct {
	Remove string `json:"remove"`
	Add    string `json:"add"`
	Reason string `json:"reason"`
}

// LLMDeckAnalysis 是AI分析路径的结果。
// 与规则评分共享等级/分数语义，额外给出卡组原型和打法建议。
type LLMDeckAnalysis struct {
	Grade                Grade                `json:"grade"`
	Score                int                  `json:"score"`
	AvgElixir            float64              `json:"avgElixir"`
	Archetype            string               `json:"archetype"`
	ArchetypeDescription string               `json:"archetypeDescription"`
	Strengths            []string             `json:"strengths"`
	Weaknesses           []string             `json:"weaknesses"`
	SwapRecommendations  []SwapRecommendation `json:"swapRecommendations"`
	PlaystyleTips        []string             `json:"playstyleTips"`
	MatchupNotes         string               `json:"matchupNotes"`
}

const analysisSystemPrompt = `You are an expert Clash Royale deck analyst and coach. You have deep knowledge of:
- All deck archetypes (2.6 Hog Cycle, Log Bait, Golem Beatdown, Lavaloon, X-Bow, Mortar Bait, Bridge Spam, Miner Control, Graveyard, etc.)
- Current meta trends and win rates
- Card synergies and anti-synergies
- Optimal deck building principles
- How to identify and fix deck weaknesses

Your analysis should be practical and actionable, not generic. Focus on what makes this specific deck work or not work.`

// buildAnalysisPrompt 构造AI卡组分析的用户提示词。
func buildAnalysisPrompt(names []string, elixirCosts []int) string {
	total := 0
	parts := make([]string, len(names))
	for i, name := range names {
		total += elixirCosts[i]
		parts[i] = fmt.Sprintf("%s (%d elixir)", name, elixirCosts[i])
	}
	avgElixir := float64(total) / float64(len(names))

	return fmt.Sprintf(`Analyze this Clash Royale deck:

Cards: %s
Average Elixir: %.1f

Provide your analysis in the following JSON format:
{
  "grade": "S/A/B/C/D/F based on competitive viability",
  "score": "0-100 numeric score",
  "archetype": "The deck archetype name (e.g., '2.6 Hog Cycle', 'Classic Log Bait', 'Golem Beatdown', 'Off-Meta Hybrid')",
  "archetypeDescription": "Brief explanation of what archetype this is and how it should be played",
  "strengths": ["Array of 2-4 specific strengths of this deck"],
  "weaknesses": ["Array of 2-4 specific weaknesses or vulnerabilities"],
  "swapRecommendations": [
    {
      "remove": "Card to remove",
      "add": "Card to add instead",
      "reason": "Why this swap improves the deck"
    }
  ],
  "playstyleTips": ["Array of 2-3 tips on how to play this deck effectively"],
  "matchupNotes": "Brief note on what matchups this deck is strong/weak against"
}

Grading criteria:
- S: Meta-defining deck, 55%%+ win rate potential, optimal synergies
- A: Strong competitive deck, 50-55%% win rate, tournament viable
- B: Viable but has clear weaknesses, 48-50%% win rate, requires skill
- C: Off-meta, below 48%% win rate, struggles against top decks
- D: Significant issues, missing key components
- F: Fundamentally broken (no win condition, way too heavy, etc.)

Important guidelines:
1. If this is a known meta deck or close variant, recognize it and grade appropriately (don't penalize meta decks)
2. Swap recommendations should be specific and explain WHY
3. If the deck is already strong, you can have fewer or no swap recommendations
4. Consider card synergies - some "weak" cards work well in specific decks
5. Be honest but constructive - explain issues clearly but offer solutions

Return ONLY valid JSON, no other text.`, strings.Join(parts, ", "), avgElixir)
}

// AnalyzeWithLLM 把8张卡牌交给Gemini做自由分析，替代规则评分。
// 未知卡牌不会导致失败：显示名回退为用户输入，费用按4估算。
func AnalyzeWithLLM(ctx context.Context, catalog *card.Catalog, cardNames []string) (*LLMDeckAnalysis, error) {
	names := make([]string, len(cardNames))
	costs := make([]int, len(cardNames))
	total := 0
	for i, name := range cardNames {
		info := catalog.Resolve(name)
		if info != nil {
			names[i] = info.Name
			costs[i] = info.Elixir
		} else {
			names[i] = name
			costs[i] = 4
		}
		total += costs[i]
	}
	avgElixir := float64(total) / float64(len(cardNames))

	raw, err := gemini.GenerateJSON(ctx, analysisSystemPrompt, buildAnalysisPrompt(names, costs))
	if err != nil {
		return nil, err
	}

	var analysis LLMDeckAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("无法解析Gemini分析结果: %w", err)
	}

	// 校验并归一化模型输出
	analysis.Grade = validateGrade(analysis.Grade)
	if analysis.Score < 0 {
		analysis.Score = 0
	}
	if analysis.Score > 100 {
		analysis.Score = 100
	}
	analysis.AvgElixir = math.Round(avgElixir*100) / 100
	if analysis.Archetype == "" {
		analysis.Archetype = "Unknown Archetype"
	}
	if len(analysis.SwapRecommendations) > 3 {
		analysis.SwapRecommendations = analysis.SwapRecommendations[:3]
	}
	return &analysis, nil
}

func validateGrade(g Grade) Grade {
	switch Grade(strings.ToUpper(string(g))) {
	case GradeS, GradeA, GradeB, GradeC, GradeD, GradeF:
		return Grade(strings.ToUpper(string(g)))
	}
	return GradeC
}
