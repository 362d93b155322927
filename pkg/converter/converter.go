// unit-converter/pkg/converter/converter.go
package converter

import (
	"errors"
	"fmt"

	"github.com/sfun/alfred-unit-converter/pkg/parser"
	"github.com/sfun/alfred-unit-converter/pkg/units"
)

// ErrIncompatibleUnits 仅在严格模式下返回，表示两个单位属于不同的单位族。
var ErrIncompatibleUnits = errors.New("incompatible units")

// Engine 是换算引擎，持有自己的单位注册表。
// 它不是并发安全的：AddConversion 不能与 Convert 同时调用。
type Engine struct {
	registry   *units.Registry
	numberMode parser.NumberMode
	strict     bool
}

// Option 定义引擎的配置选项 (Functional Option Pattern)
type Option func(*Engine)

// WithNumberMode 设置数值提取方式（默认 parser.DecimalNumbers）
func WithNumberMode(mode parser.NumberMode) Option {
	return func(e *Engine) {
		e.numberMode = mode
	}
}

// WithStrictFamilies 开启单位族校验，禁止例如 米 -> 摄氏度 这样的换算。
// 未标注单位族的自定义单位不参与校验。
func WithStrictFamilies(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithRegistry 使用指定的注册表替代默认注册表
func WithRegistry(r *units.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// New 创建一个使用默认单位表的引擎。
func New(opts ...Option) *Engine {
	e := &Engine{
		registry:   units.NewRegistry(),
		numberMode: parser.DecimalNumbers,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry 返回引擎持有的注册表
func (e *Engine) Registry() *units.Registry {
	return e.registry
}

// AddConversion 注册或覆盖一个单位
func (e *Engine) AddConversion(symbol string, factor, offset float64) {
	e.registry.AddConversion(symbol, factor, offset)
}

// Result 是一次换算的完整结果。
type Result struct {
	Expression *parser.ParsedExpression
	From       units.Resolved
	To         units.Resolved
	BaseValue  float64 // 基准单位下的数值
	Value      float64
	Text       string // "<number> <unit>"
}

// Evaluate 解析并执行换算，返回结构化结果。
// 源单位和目标单位都解析成功才会返回结果，否则只返回错误。
func (e *Engine) Evaluate(input string) (*Result, error) {
	expr, err := parser.ParseWithMode(input, e.numberMode)
	if err != nil {
		return nil, err
	}

	from, err := e.registry.Resolve(expr.From)
	if err != nil {
		return nil, err
	}
	to, err := e.registry.Resolve(expr.To)
	if err != nil {
		return nil, err
	}

	if e.strict && from.Family != "" && to.Family != "" && from.Family != to.Family {
		return nil, fmt.Errorf("%w: %s (%s) -> %s (%s)", ErrIncompatibleUnits, expr.From, from.Family, expr.To, to.Family)
	}

	base := toBase(expr.Value, from)
	value := fromBase(base, to)

	return &Result{
		Expression: expr,
		From:       from,
		To:         to,
		BaseValue:  base,
		Value:      value,
		Text:       fmt.Sprintf("%s %s", FormatNumber(value), expr.To),
	}, nil
}

// Convert 将 "10km to mile" 这样的表达式换算为 "6.21 mile"。
func (e *Engine) Convert(input string) (string, error) {
	res, err := e.Evaluate(input)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// ConvertValue 在两个已解析的单位之间换算数值。
// 不检查单位族，跨族换算会得到一个没有物理意义的数值。
func ConvertValue(value float64, from, to units.Resolved) float64 {
	return fromBase(toBase(value, from), to)
}

func toBase(value float64, u units.Resolved) float64 {
	return (value + u.Offset) * u.Factor
}

func fromBase(base float64, u units.Resolved) float64 {
	return base/u.Factor - u.Offset
}
