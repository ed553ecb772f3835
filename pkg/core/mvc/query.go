package mvc

import (
	"strings"
	"time"
)

// DayRange 返回 t 所在自然日的起止时间 [from, to)
func DayRange(t time.Time) (from, to time.Time) {
	y, m, d := t.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 0, 1)
}

// LikeEscape 与 LikePattern 配套，命名查询中写作 "col LIKE @key ESCAPE '!'"
//
// 反斜杠在 MySQL 字符串里本身是转义符，换成 '!' 三种数据库写法一致。
const LikeEscape = "ESCAPE '!'"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// LikePattern 包含匹配，关键字里的 % 和 _ 按字面量处理
func LikePattern(keyword string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(keyword)) + "%"
}
