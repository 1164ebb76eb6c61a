package model

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DateLayout 学习日期的固定格式，定宽 ISO 格式保证字符串比较与日期比较一致
const DateLayout = "2006-01-02"

// LogEntry 一条学习记录，创建后不可变，只能删除后重新添加
type LogEntry struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`           // 用户选择的学习日期（YYYY-MM-DD），区别于创建时间
	Subject        string    `json:"subject"`        // 小写规范化科目名，用于分组与相等判断
	DisplaySubject string    `json:"displaySubject"` // 首字母大写的展示名
	Hours          float64   `json:"hours"`
	Grade          *float64  `json:"grade"`          // 可选成绩（百分比），nil 表示未评分
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"timestamp"` // 创建时间，时段类成就依赖它
}

// NormalizeSubject 把用户输入的科目名拆成分组键和展示名
func NormalizeSubject(raw string) (key, display string) {
	key = strings.ToLower(strings.TrimSpace(raw))
	display = Capitalize(key)
	return key, display
}

// Capitalize 首字符大写。按 rune 取首字符，多字节科目名不能被截断
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
