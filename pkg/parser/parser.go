package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalRe = regexp.MustCompile(`[-+]?(?:\d+(?:\.\d*)?|\.\d+)`)
	integerRe = regexp.MustCompile(`\d+`)
	letterRe  = regexp.MustCompile(`\p{L}+`)
)

// Parse 使用默认的小数模式解析表达式。
func Parse(input string) (*ParsedExpression, error) {
	return ParseWithMode(input, DecimalNumbers)
}

// ParseWithMode 解析形如 "<数量><单位> [连接词] [目标单位]" 的表达式。
//
// 第一个分词中的数字和字母分别独立查找，二者不要求相邻。
// 有三个分词时，第二个分词（通常是 "to"）被忽略，第三个分词原样作为目标单位。
func ParseWithMode(input string, mode NumberMode) (*ParsedExpression, error) {
	parts := strings.Fields(input)
	if len(parts) < 1 || len(parts) > 3 {
		return nil, ErrInvalidFormat
	}

	value, err := extractValue(parts[0], mode)
	if err != nil {
		return nil, err
	}

	from := letterRe.FindString(parts[0])
	if from == "" {
		return nil, ErrInvalidFormat
	}

	to := from
	if len(parts) == 3 {
		to = parts[2]
	}

	return &ParsedExpression{Input: input, Value: value, From: from, To: to}, nil
}

func extractValue(text string, mode NumberMode) (float64, error) {
	re := decimalRe
	if mode == IntegerNumbers {
		re = integerRe
	}

	matched := re.FindString(text)
	if matched == "" {
		return 0, ErrInvalidNumber
	}
	v, err := strconv.ParseFloat(matched, 64)
	if err != nil {
		// 只在数字串超出 float64 范围时发生
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, matched)
	}
	return v, nil
}
