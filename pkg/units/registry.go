// unit-converter/pkg/units/registry.go
package units

import "sort"

// 单位族，仅用于可选的严格模式校验
const (
	FamilyLength      = "length"
	FamilyTemperature = "temperature"
)

// BaseSymbol 返回单位族的基准单位符号，未知单位族返回空字符串。
func BaseSymbol(family string) string {
	switch family {
	case FamilyLength:
		return "m"
	case FamilyTemperature:
		return "C"
	}
	return ""
}

// Conversion 描述一个单位到其基准单位的线性换算规则:
//
//	base  = (value + Offset) * Factor
//	value = base / Factor - Offset
type Conversion struct {
	Factor float64
	Offset float64
	Family string // 单位族, 用户自定义单位为空
}

// Registry 保存单位表和前缀表。
// 它不做任何加锁，并发场景下调用方需要保证 AddConversion 不与查询同时发生。
type Registry struct {
	conversions map[string]Conversion
	prefixes    map[string]float64
	order       []string // 前缀的扫描顺序, 见 sortPrefixes
}

// NewRegistry 创建一个包含默认单位和默认前缀的注册表。
func NewRegistry() *Registry {
	r := &Registry{
		conversions: map[string]Conversion{
			// --- 长度 (基准: 米 'm') ---
			"m":    {Factor: 1.0, Family: FamilyLength},
			"mile": {Factor: 1609.34, Family: FamilyLength},
			"yard": {Factor: 0.9144, Family: FamilyLength},
			"foot": {Factor: 0.3048, Family: FamilyLength},
			"inch": {Factor: 0.0254, Family: FamilyLength},

			// --- 温度 (基准: 摄氏度 'C') ---
			"C": {Factor: 1.0, Family: FamilyTemperature},
			"K": {Factor: 1.0, Offset: -273.15, Family: FamilyTemperature},
			"F": {Factor: 5.0 / 9.0, Offset: -32.0, Family: FamilyTemperature},
		},
		prefixes: defaultPrefixes(),
	}
	r.order = sortPrefixes(r.prefixes)
	return r
}

// AddConversion 注册或覆盖一个单位。
// factor 为 0 时不会报错，换算结果将是 Inf 或 NaN。
func (r *Registry) AddConversion(symbol string, factor, offset float64) {
	r.conversions[symbol] = Conversion{Factor: factor, Offset: offset}
}

// Lookup 按符号精确查找单位（区分大小写）。
func (r *Registry) Lookup(symbol string) (Conversion, bool) {
	c, ok := r.conversions[symbol]
	return c, ok
}

// Units 返回所有已注册的单位符号，按字典序排列。
func (r *Registry) Units() []string {
	symbols := make([]string, 0, len(r.conversions))
	for s := range r.conversions {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
