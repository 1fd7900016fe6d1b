package pdburger

import (
	"fmt"

	"github.com/hitzhangjie/pdburger/pkg/breakpoint"
)

// List 返回view对应Manager的调试信息
func (p *Plugin) List(view View) string {
	return p.Manager(view).String()
}

// Toggle 对view中的每个选区切换断点，buffer没有未保存的修改时导出
func (p *Plugin) Toggle(view View) error {
	m := p.Manager(view)
	for _, r := range view.Selections() {
		m.Toggle(r)
	}
	return p.exportIfClean(view)
}

// Reset 清除view中的所有断点，buffer没有未保存的修改时导出
func (p *Plugin) Reset(view View) error {
	p.Manager(view).Reset()
	return p.exportIfClean(view)
}

// GotoItems returns the picker entries for view in display order.
func (p *Plugin) GotoItems(view View) []string {
	return p.Manager(view).Labels()
}

// Goto 跳转到第idx个断点所在行，idx与GotoItems返回的下标对应
func (p *Plugin) Goto(view View, idx int) (*breakpoint.Breakpoint, error) {
	b, err := p.Manager(view).At(idx)
	if err != nil {
		return nil, fmt.Errorf("goto %d: %w", idx, err)
	}
	view.ShowAt(b.Region())
	return b, nil
}
