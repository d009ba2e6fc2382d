package card

import (
	"regexp"
	"strings"
)

// 两种归一化形式不可互相转换，调用方必须与索引约定使用同一种形式。
var (
	joinStripRe    = regexp.MustCompile(`[^a-z0-9]`)
	slugCollapseRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeForJoin 生成用于模糊匹配的"连接形式"：
// 小写、& 替换为 and、去掉所有非字母数字字符，不插入任何分隔符。
// 例如 "P.E.K.K.A" -> "pekka"，"Mini P.E.K.K.A" -> "minipekka"。
func NormalizeForJoin(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")
	return joinStripRe.ReplaceAllString(s, "")
}

// NormalizeCardName 生成用于展示和URL的"slug形式"：
// 小写、& 替换为 and、连续的非字母数字字符折叠为单个连字符，并去掉首尾连字符。
// 例如 "The Log" -> "the-log"。
func NormalizeCardName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
