// unit-converter/pkg/alfred/feedback.go
package alfred

import (
	"errors"
	"fmt"

	"github.com/deanishe/awgo"

	"github.com/sfun/alfred-unit-converter/pkg/converter"
	"github.com/sfun/alfred-unit-converter/pkg/parser"
	"github.com/sfun/alfred-unit-converter/pkg/units"
)

// Result is a standard structure for a single feedback item
type Result struct {
	Title    string
	Subtitle string
	Arg      string // Value copied to clipboard
	Valid    bool
}

// Feedback 是 *aw.Workflow 中生成反馈项的部分，方便在测试中替换
type Feedback interface {
	NewItem(title string) *aw.Item
	NewWarning(title, subtitle string) *aw.Item
}

// AddToWorkflow adds a slice of Results to the Alfred workflow feedback
func AddToWorkflow(wf Feedback, results []Result) {
	for _, r := range results {
		item := wf.NewItem(r.Title).
			Subtitle(r.Subtitle).
			Valid(r.Valid)
		if r.Arg != "" {
			item.Arg(r.Arg)
		}
	}
}

// ShowError displays a user-friendly error in Alfred
func ShowError(wf Feedback, err error) {
	wf.NewWarning("换算出错", Describe(err))
}

// Describe 把引擎返回的错误翻译成给用户看的提示
func Describe(err error) string {
	var unitErr *units.InvalidUnitError
	switch {
	case errors.As(err, &unitErr):
		return fmt.Sprintf("未知的单位: %s", unitErr.Token)
	case errors.Is(err, parser.ErrInvalidNumber):
		return "找不到数值，请尝试: '10km to mile'"
	case errors.Is(err, parser.ErrInvalidFormat):
		return "无法解析输入，请尝试: '10km to mile', '25C to F'"
	case errors.Is(err, converter.ErrIncompatibleUnits):
		return fmt.Sprintf("无法在不同类型单位间换算: %s", err)
	default:
		return err.Error()
	}
}
