// unit-converter/pkg/config/config.go
package config

import (
	"path/filepath"
	"strings"

	"github.com/deanishe/awgo"

	"github.com/sfun/alfred-unit-converter/pkg/parser"
)

// AppConfig 结构体用于保存从 Alfred 获取的所有用户配置。
type AppConfig struct {
	NumberMode     parser.NumberMode // 数值提取方式 ("decimal" 或 "integer")
	StrictFamilies bool              // 是否禁止跨单位族换算
	CustomUnitsDB  string            // 自定义单位数据库的路径
	LogLevel       string            // 日志级别 (e.g., "info", "debug")
	ShowBaseValue  bool              // 是否在副标题中显示基准单位下的数值
}

// Load 使用 awgo 的 Config 从环境变量中加载配置，未设置的项使用默认值。
// dataDir 是自定义单位数据库的默认存放目录（通常为 wf.DataDir()）。
func Load(cfg *aw.Config, dataDir string) *AppConfig {
	return &AppConfig{
		NumberMode:     parseNumberMode(cfg.GetString("number_mode", "decimal")),
		StrictFamilies: cfg.GetBool("strict_families", false),
		CustomUnitsDB:  cfg.GetString("custom_units_db", filepath.Join(dataDir, "units.db")),
		LogLevel:       cfg.GetString("log_level", "info"),
		ShowBaseValue:  cfg.GetBool("show_base_value", true),
	}
}

// parseNumberMode 将配置字符串转换为 parser.NumberMode，无法识别时使用小数模式。
func parseNumberMode(s string) parser.NumberMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "integer", "int":
		return parser.IntegerNumbers
	default:
		return parser.DecimalNumbers
	}
}
