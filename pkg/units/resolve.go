package units

import (
	"fmt"
	"strings"
)

// InvalidUnitError 表示单位既无法精确匹配，也无法通过 前缀+基础单位 匹配。
type InvalidUnitError struct {
	Token string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit: %s", e.Token)
}

// Resolved 是一个单位符号解析后的有效换算参数。
type Resolved struct {
	Factor float64 // 已乘上前缀倍数
	Offset float64 // 前缀不影响偏移量
	Base   string  // 注册表中的单位符号
	Prefix string
	Family string
}

// Resolve 将原始单位符号解析为有效的 factor/offset。
//
// 精确匹配优先于前缀拆分，因此 "m" 解析为米而不是 "milli" + 空单位。
// 否则按 Prefixes() 的顺序取第一个匹配的前缀，只尝试这一个前缀。
func (r *Registry) Resolve(token string) (Resolved, error) {
	if c, ok := r.conversions[token]; ok {
		return Resolved{Factor: c.Factor, Offset: c.Offset, Base: token, Family: c.Family}, nil
	}

	prefix, base := "", token
	for _, p := range r.order {
		if strings.HasPrefix(token, p) {
			prefix, base = p, token[len(p):]
			break
		}
	}

	c, ok := r.conversions[base]
	if !ok {
		return Resolved{}, &InvalidUnitError{Token: token}
	}
	multiplier, _ := r.prefix(prefix)
	return Resolved{
		Factor: c.Factor * multiplier,
		Offset: c.Offset,
		Base:   base,
		Prefix: prefix,
		Family: c.Family,
	}, nil
}
