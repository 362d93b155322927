package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhunt/go-log"

	"github.com/sfun/alfred-unit-converter/pkg/alfred"
	"github.com/sfun/alfred-unit-converter/pkg/converter"
	"github.com/sfun/alfred-unit-converter/pkg/store"
	"github.com/sfun/alfred-unit-converter/pkg/units"
)

var errNoStore = errors.New("自定义单位数据库不可用")

// handleSpecialCommands 处理内部命令，如添加单位和清除缓存
func (h *Handler) handleSpecialCommands(query string) bool {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return false
	}

	var err error
	switch fields[0] {
	case "_add":
		err = h.addUnit(fields[1:])
	case "_del":
		err = h.deleteUnit(fields[1:])
	case "_units":
		err = h.listUnits()
	case "_caclear":
		err = h.clear()
	default:
		return false
	}

	if err != nil {
		alfred.ShowError(h.Feedback, err)
	}
	return true
}

// addUnit 处理 "_add <symbol> <factor> [offset]"
func (h *Handler) addUnit(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("用法: _add <单位> <系数> [偏移量]")
	}
	symbol := args[0]
	factor, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("无效的系数 '%s': %w", args[1], err)
	}
	offset := 0.0
	if len(args) == 3 {
		if offset, err = strconv.ParseFloat(args[2], 64); err != nil {
			return fmt.Errorf("无效的偏移量 '%s': %w", args[2], err)
		}
	}
	if h.Store == nil {
		return errNoStore
	}

	if err := h.Store.Save(store.Conversion{Symbol: symbol, Factor: factor, Offset: offset}); err != nil {
		return err
	}
	h.Engine.AddConversion(symbol, factor, offset)
	log.Infof("registered unit %s (factor %g, offset %g)", symbol, factor, offset)

	alfred.AddToWorkflow(h.Feedback, []alfred.Result{{
		Title:    fmt.Sprintf("已添加单位 '%s'", symbol),
		Subtitle: fmt.Sprintf("基准值 = (数值 + %g) × %g", offset, factor),
	}})
	return nil
}

// deleteUnit 处理 "_del <symbol>"
func (h *Handler) deleteUnit(args []string) error {
	if len(args) != 1 {
		return errors.New("用法: _del <单位>")
	}
	if h.Store == nil {
		return errNoStore
	}
	c, err := h.Store.Get(args[0])
	if err != nil {
		return err
	}
	if err := h.Store.Delete(c.Symbol); err != nil {
		return err
	}
	alfred.AddToWorkflow(h.Feedback, []alfred.Result{{
		Title:    fmt.Sprintf("已删除单位 '%s'", c.Symbol),
		Subtitle: fmt.Sprintf("系数 %g, 偏移量 %g · 下次运行时生效", c.Factor, c.Offset),
	}})
	return nil
}

// listUnits 列出所有可用的单位
func (h *Handler) listUnits() error {
	custom := map[string]bool{}
	if h.Store != nil {
		list, err := h.Store.List()
		if err != nil {
			return err
		}
		for _, c := range list {
			custom[c.Symbol] = true
		}
	}

	reg := h.Engine.Registry()
	var results []alfred.Result
	for _, symbol := range reg.Units() {
		c, _ := reg.Lookup(symbol)
		kind := c.Family
		if custom[symbol] {
			kind = "自定义"
		} else if kind == "" {
			kind = "未分类"
		}
		results = append(results, alfred.Result{
			Title:    symbol,
			Subtitle: fmt.Sprintf("%s · 系数 %g, 偏移量 %g", kind, c.Factor, c.Offset),
			Arg:      symbol,
			Valid:    true,
		})
	}
	alfred.AddToWorkflow(h.Feedback, []alfred.Result{{
		Title:    fmt.Sprintf("共 %d 个单位", len(results)),
		Subtitle: "前缀: " + strings.Join(reg.Prefixes(), " "),
	}})
	alfred.AddToWorkflow(h.Feedback, results)
	return nil
}

// clear 清除 workflow 缓存和所有自定义单位
func (h *Handler) clear() error {
	if h.Cache != nil {
		if err := h.Cache.ClearCache(); err != nil {
			return fmt.Errorf("清除缓存失败: %w", err)
		}
	}
	if h.Store != nil {
		if err := h.Store.Clear(); err != nil {
			return fmt.Errorf("清除自定义单位失败: %w", err)
		}
	}
	alfred.AddToWorkflow(h.Feedback, []alfred.Result{{Title: "缓存已成功清除"}})
	return nil
}

// handleConversion 执行换算并生成结果项
func (h *Handler) handleConversion(query string) {
	res, err := h.Engine.Evaluate(query)
	if err != nil {
		log.Debugf("conversion of '%s' failed: %s", query, err)
		alfred.ShowError(h.Feedback, err)
		return
	}

	number := converter.FormatNumber(res.Value)
	subtitle := fmt.Sprintf("复制 '%s'", number)
	if h.Config != nil && h.Config.ShowBaseValue {
		if base := units.BaseSymbol(res.From.Family); base != "" {
			subtitle = fmt.Sprintf("%s %s = %s %s · %s", converter.FormatNumber(res.Expression.Value), res.Expression.From,
				converter.FormatNumber(res.BaseValue), base, subtitle)
		}
	}

	alfred.AddToWorkflow(h.Feedback, []alfred.Result{{
		Title:    fmt.Sprintf("%s %s = %s", converter.FormatNumber(res.Expression.Value), res.Expression.From, res.Text),
		Subtitle: subtitle,
		Arg:      number,
		Valid:    true,
	}})
}
