package deck

import (
	"fmt"
	"math"
	"strings"

	"github.com/SlpAus/royale-coach-backend/internal/card"
)

const deckSize = 8

// Analyze 对8张卡牌的卡组运行全部六项检查并汇总为0-100的评分。
// 整个函数无状态：从满分100开始，各项扣分独立求和，最后下限截断到0。
// 前置条件失败时返回*ValidationError，不产生任何部分结果。
func Analyze(catalog *card.Catalog, cardNames []string) (*DeckAnalysis, error) {
	if len(cardNames) != deckSize {
		return nil, &ValidationError{Message: "Deck must contain exactly 8 cards"}
	}

	cards := make([]*card.CardInfo, 0, deckSize)
	var unknown []string
	for _, name := range cardNames {
		info := catalog.Resolve(name)
		if info == nil {
			// 错误消息保留用户的原始拼写
			unknown = append(unknown, name)
			continue
		}
		cards = append(cards, info)
	}
	if len(unknown) > 0 {
		return nil, &ValidationError{Message: "Unknown cards: " + strings.Join(unknown, ", ")}
	}

	analysis := &DeckAnalysis{
		Issues:          []string{},
		Strengths:       []string{},
		Recommendations: []string{},
		CheckResults:    make(map[string]CheckResult, 6),
	}

	total := 0
	for _, c := range cards {
		total += c.Elixir
	}
	avgElixir := float64(total) / float64(deckSize)

	score := 100

	// 检查1：胜利条件
	var winConditions []string
	for _, c := range cards {
		if c.HasRole(card.RoleWinCondition) {
			winConditions = append(winConditions, c.Name)
		}
	}
	if len(winConditions) == 0 {
		analysis.CheckResults[CheckWinCondition] = CheckResult{
			Passed:   false,
			Message:  "No win condition detected. You need a card that reliably targets buildings.",
			Severity: SeverityCritical,
		}
		analysis.Issues = append(analysis.Issues, "Missing win condition")
		analysis.Recommendations = append(analysis.Recommendations, "Add a win condition like Hog Rider, Goblin Barrel, or Balloon")
		score -= 30
	} else {
		analysis.CheckResults[CheckWinCondition] = CheckResult{
			Passed:   true,
			Message:  "Win condition: " + strings.Join(winConditions, ", "),
			Severity: SeverityMinor,
		}
		analysis.Strengths = append(analysis.Strengths, fmt.Sprintf("Has %d win condition(s)", len(winConditions)))
	}

	// 检查2：双法术标准
	smallSpells := countRole(cards, card.RoleSpellSmall)
	bigSpells := countRole(cards, card.RoleSpellBig)
	switch {
	case smallSpells+bigSpells == 0:
		analysis.CheckResults[CheckSpells] = CheckResult{
			Passed:   false,
			Message:  "No spells. You need at least a small spell to deal with swarms.",
			Severity: SeverityCritical,
		}
		analysis.Issues = append(analysis.Issues, "No spells")
		analysis.Recommendations = append(analysis.Recommendations, "Add Zap or Arrows for swarms, and Fireball or Poison for medium troops")
		score -= 25
	case smallSpells == 0:
		analysis.CheckResults[CheckSpells] = CheckResult{
			Passed:   false,
			Message:  "Missing small spell (2-3 elixir) to counter swarms quickly.",
			Severity: SeverityMajor,
		}
		analysis.Issues = append(analysis.Issues, "No small spell")
		analysis.Recommendations = append(analysis.Recommendations, "Add Zap, Arrows, or Log to counter Skeleton Army and Goblin Gang")
		score -= 15
	case bigSpells == 0:
		analysis.CheckResults[CheckSpells] = CheckResult{
			Passed:   false,
			Message:  "Missing big spell (4+ elixir) for area damage and finishing towers.",
			Severity: SeverityMajor,
		}
		analysis.Issues = append(analysis.Issues, "No big spell")
		analysis.Recommendations = append(analysis.Recommendations, "Add Fireball or Poison to punish clumped troops")
		score -= 15
	default:
		analysis.CheckResults[CheckSpells] = CheckResult{
			Passed:   true,
			Message:  fmt.Sprintf("Balanced spell coverage: %d small, %d big", smallSpells, bigSpells),
			Severity: SeverityMinor,
		}
		analysis.Strengths = append(analysis.Strengths, "Two-spell standard met")
	}

	// 检查3：平均圣水费用
	// 边界必须用严格大于/小于：恰好4.0和2.5落在通过区间
	switch {
	case avgElixir > 4.5:
		analysis.CheckResults[CheckElixirCost] = CheckResult{
			Passed:   false,
			Message:  fmt.Sprintf("Average elixir (%.1f) is too high. You'll struggle in single elixir.", avgElixir),
			Severity: SeverityCritical,
		}
		analysis.Issues = append(analysis.Issues, "Deck too heavy")
		analysis.Recommendations = append(analysis.Recommendations, "Replace expensive cards with cheaper alternatives (aim for 3.0-4.0 average)")
		score -= 20
	case avgElixir > 4.0:
		analysis.CheckResults[CheckElixirCost] = CheckResult{
			Passed:   false,
			Message:  fmt.Sprintf("Average elixir (%.1f) is slightly high. Consider cheaper options.", avgElixir),
			Severity: SeverityMinor,
		}
		analysis.Issues = append(analysis.Issues, "Deck slightly heavy")
		score -= 5
	case avgElixir < 2.5:
		analysis.CheckResults[CheckElixirCost] = CheckResult{
			Passed:   false,
			Message:  fmt.Sprintf("Average elixir (%.1f) is too low. May lack defensive power.", avgElixir),
			Severity: SeverityMinor,
		}
		analysis.Issues = append(analysis.Issues, "Deck very light")
		score -= 5
	default:
		analysis.CheckResults[CheckElixirCost] = CheckResult{
			Passed:   true,
			Message:  fmt.Sprintf("Average elixir (%.1f) is in the optimal range (3.0-4.0)", avgElixir),
			Severity: SeverityMinor,
		}
		analysis.Strengths = append(analysis.Strengths, "Optimal elixir cost")
	}

	// 检查4：对空能力
	// air_defense角色本身部分来自targets，但两个条件仍要独立检查：
	// 只有角色没有targets数据的卡牌也要计入
	var airDefense []string
	for _, c := range cards {
		if c.HasRole(card.RoleAirDefense) || c.Targets == card.TargetsBoth || c.Targets == card.TargetsAir {
			airDefense = append(airDefense, c.Name)
		}
	}
	switch {
	case len(airDefense) == 0:
		analysis.CheckResults[CheckAirDefense] = CheckResult{
			Passed:   false,
			Message:  "No air defense! Balloon and Lava Hound will destroy you.",
			Severity: SeverityCritical,
		}
		analysis.Issues = append(analysis.Issues, "No air counters")
		analysis.Recommendations = append(analysis.Recommendations, "Add Musketeer, Electro Wizard, or Mega Minion for air defense")
		score -= 30
	case len(airDefense) < 2:
		analysis.CheckResults[CheckAirDefense] = CheckResult{
			Passed:   false,
			Message:  "Only one air defense unit. Add backup for heavy air decks.",
			Severity: SeverityMajor,
		}
		analysis.Issues = append(analysis.Issues, "Weak air defense")
		analysis.Recommendations = append(analysis.Recommendations, "Add a second air-targeting troop for reliability")
		score -= 10
	default:
		analysis.CheckResults[CheckAirDefense] = CheckResult{
			Passed:   true,
			Message:  "Solid air defense: " + strings.Join(airDefense, ", "),
			Severity: SeverityMinor,
		}
		analysis.Strengths = append(analysis.Strengths, "Strong air defense")
	}

	// 检查5：坦克杀手/建筑
	tankKillers := countRole(cards, card.RoleTankKiller)
	buildings := countRole(cards, card.RoleBuilding)
	if tankKillers == 0 && buildings == 0 {
		analysis.CheckResults[CheckTankKiller] = CheckResult{
			Passed:   false,
			Message:  "No high-DPS units or buildings. Tanks like Golem will overwhelm you.",
			Severity: SeverityMajor,
		}
		analysis.Issues = append(analysis.Issues, "No tank killer")
		analysis.Recommendations = append(analysis.Recommendations, "Add Mini P.E.K.K.A, Inferno Dragon, or Inferno Tower")
		score -= 15
	} else {
		analysis.CheckResults[CheckTankKiller] = CheckResult{
			Passed:   true,
			Message:  "Has tank-killing capability",
			Severity: SeverityMinor,
		}
		analysis.Strengths = append(analysis.Strengths, "Can handle tanks")
	}

	// 检查6：角色冗余
	// 这条规则只针对splash，不是通用的过度堆叠检查
	splashCount := countRole(cards, card.RoleSplash)
	if splashCount > 3 {
		analysis.CheckResults[CheckRedundancy] = CheckResult{
			Passed:   false,
			Message:  "Too many cards doing the same job. Diversify your roles.",
			Severity: SeverityMinor,
		}
		analysis.Issues = append(analysis.Issues, "Redundant roles")
		analysis.Recommendations = append(analysis.Recommendations, "Replace one splash unit with a cycle card or different role")
		score -= 10
	} else {
		analysis.CheckResults[CheckRedundancy] = CheckResult{
			Passed:   true,
			Message:  "Balanced role distribution",
			Severity: SeverityMinor,
		}
	}

	if score < 0 {
		score = 0
	}
	analysis.Score = score
	analysis.Grade = gradeForScore(score)
	analysis.AvgElixir = math.Round(avgElixir*100) / 100

	return analysis, nil
}

// gradeForScore 按从高到低的阈值把分数映射为等级。
func gradeForScore(score int) Grade {
	switch {
	case score >= 90:
		return GradeS
	case score >= 80:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 60:
		return GradeC
	case score >= 50:
		return GradeD
	}
	return GradeF
}

func countRole(cards []*card.CardInfo, role card.Role) int {
	n := 0
	for _, c := range cards {
		if c.HasRole(role) {
			n++
		}
	}
	return n
}
