package converter

import (
	"strconv"
	"strings"
)

// FormatNumber 保留两位小数，然后去掉末尾多余的 0 和小数点。
// 12.00 -> "12", 12.50 -> "12.5", 12.345 -> "12.35"
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
