package units

import (
	"sort"
	"unicode/utf8"
)

// defaultPrefixes 返回公制前缀及其倍数。空字符串代表“无前缀”。
func defaultPrefixes() map[string]float64 {
	return map[string]float64{
		"n": 1e-9, // nano
		"μ": 1e-6, // micro
		"m": 1e-3, // milli
		"c": 1e-2, // centi
		"":  1.0,
		"k": 1e3, // kilo
		"M": 1e6, // mega
		"G": 1e9, // giga
	}
}

// sortPrefixes 决定前缀的匹配顺序: 先按长度（rune 数）降序，再按字典序。
// 空前缀不参与扫描。
func sortPrefixes(prefixes map[string]float64) []string {
	order := make([]string, 0, len(prefixes))
	for p := range prefixes {
		if p != "" {
			order = append(order, p)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(order[i]), utf8.RuneCountInString(order[j])
		if li != lj {
			return li > lj
		}
		return order[i] < order[j]
	})
	return order
}

// prefix 返回前缀的倍数。
func (r *Registry) prefix(symbol string) (float64, bool) {
	m, ok := r.prefixes[symbol]
	return m, ok
}

// Prefixes 按扫描顺序返回所有非空前缀。
func (r *Registry) Prefixes() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
