package deck

// Grade 是评分对应的等级字母。
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Severity 描述单项检查失败的严重程度。
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// 六项检查在checkResults中的固定键名。
const (
	CheckWinCondition = "winCondition"
	CheckSpells       = "spells"
	CheckElixirCost   = "elixirCost"
	CheckAirDefense   = "airDefense"
	CheckTankKiller   = "tankKiller"
	CheckRedundancy   = "redundancy"
)

// CheckResult 是一项检查的结构化结果。
type CheckResult struct {
	Passed   bool     `json:"passed"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// DeckAnalysis 是一次评分调用的完整结果，每次请求新建，不做持久化。
type DeckAnalysis struct {
	Grade           Grade                  `json:"grade"`
	Score           int                    `json:"score"`
	AvgElixir       float64                `json:"avgElixir"`
	Issues          []string               `json:"issues"`
	Strengths       []string               `json:"strengths"`
	Recommendations []string               `json:"recommendations"`
	CheckResults    map[string]CheckResult `json:"checkResults"`
}

// ValidationError 是评分引擎唯一会抛出的错误类型：
// 卡组数量不对或存在无法解析的卡牌名。消息原样透传给调用方。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
