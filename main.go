// unit-converter/main.go
package main

import (
	"github.com/deanishe/awgo"
	"github.com/deanishe/awgo/update"

	"github.com/sfun/alfred-unit-converter/cmd"
)

// wf 是一个全局的 Workflow 实例，负责与 Alfred 的所有交互。
var wf *aw.Workflow

func init() {
	wf = aw.New(aw.HelpURL("https://github.com/ssfun/alfred-workflow/unit-converter"), update.GitHub("ssfun/alfred-workflow"))
}

func main() {
	// wf.Run() 会处理 panic 的恢复
	wf.Run(func() {
		cmd.Run(wf)
	})
}
