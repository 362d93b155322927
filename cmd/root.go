// unit-converter/cmd/root.go
package cmd

import (
	"strings"

	"github.com/deanishe/awgo"
	"github.com/jhunt/go-log"

	"github.com/sfun/alfred-unit-converter/pkg/alfred"
	"github.com/sfun/alfred-unit-converter/pkg/config"
	"github.com/sfun/alfred-unit-converter/pkg/converter"
	"github.com/sfun/alfred-unit-converter/pkg/store"
)

// Run 是 Alfred 执行的入口
func Run(wf *aw.Workflow) {
	// 加载用户在 Alfred Workflow 中设置的配置
	cfg := config.Load(wf.Config, wf.DataDir())
	log.SetupLogging(logConfig(cfg.LogLevel))

	if len(wf.Args()) == 0 {
		return // 如果没有输入参数则直接退出
	}
	query := strings.TrimSpace(wf.Args()[0])

	eng := converter.New(
		converter.WithNumberMode(cfg.NumberMode),
		converter.WithStrictFamilies(cfg.StrictFamilies),
	)

	// 自定义单位数据库打不开时仍然可以使用内置单位
	st, err := store.Open(cfg.CustomUnitsDB)
	if err != nil {
		log.Errorf("custom unit store unavailable: %s", err)
	} else {
		defer st.Close()
		if _, err := st.Apply(eng.Registry()); err != nil {
			log.Errorf("%s", err)
		}
	}

	h := &Handler{Feedback: wf, Cache: wf, Config: cfg, Engine: eng}
	if st != nil {
		h.Store = st
	}
	h.Handle(query)

	// 将所有生成的反馈项发送给 Alfred 进行显示
	wf.SendFeedback()
}

// logConfig 返回写到 stderr 的日志配置。
// stdout 是 Alfred 解析的 JSON 反馈，不能写入日志；Alfred 会把 stderr 显示在调试窗口中。
func logConfig(level string) log.LogConfig {
	return log.LogConfig{Type: "console", File: "stderr", Level: level}
}

// Handler 处理一次查询，并把结果写入 Feedback
type Handler struct {
	Feedback alfred.Feedback
	Cache    CacheClearer
	Store    UnitStore // 可以为 nil
	Config   *config.AppConfig
	Engine   *converter.Engine
}

// CacheClearer 由 *aw.Workflow 实现
type CacheClearer interface {
	ClearCache() error
}

// UnitStore 是 *store.Store 中 Handler 用到的部分
type UnitStore interface {
	Save(c store.Conversion) error
	Get(symbol string) (store.Conversion, error)
	Delete(symbol string) error
	List() ([]store.Conversion, error)
	Clear() error
}

// Handle 先处理特殊命令，否则把查询当作换算表达式
func (h *Handler) Handle(query string) {
	if h.handleSpecialCommands(query) {
		return
	}
	h.handleConversion(query)
}
