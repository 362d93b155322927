// unit-converter/pkg/parser/types.go
package parser

import "errors"

// NumberMode 决定如何从数量部分中提取数值。
type NumberMode int

const (
	// DecimalNumbers 识别带符号的小数, 如 "-5", "3.5", ".5", "3."
	DecimalNumbers NumberMode = iota
	// IntegerNumbers 只识别无符号的整数数字串, "3.5" 得到 3, "-5" 得到 5
	IntegerNumbers
)

var (
	// ErrInvalidFormat 表示分词数量不在 1~3 之间，或数量部分中找不到单位。
	ErrInvalidFormat = errors.New("invalid input format")
	// ErrInvalidNumber 表示数量部分中找不到数字。
	ErrInvalidNumber = errors.New("invalid number format")
)

// ParsedExpression 是对一次换算表达式的解析结果。
// 例如 "10km to mile" -> {Value: 10, From: "km", To: "mile"}
type ParsedExpression struct {
	Input string  // 用户输入的原始字符串
	Value float64 // 数值
	From  string  // 源单位符号
	To    string  // 目标单位符号，省略时等于 From
}
