package breakpoint

import (
	"fmt"
	"strconv"
)

// Breakpoint 断点信息，绑定在某个buffer的一行源码上
type Breakpoint struct {
	manager *Manager
	key     string // 在view中登记region使用的key
	initial Region // 创建时所在的整行
}

// 在region所在的整行创建一个断点，此时还不会在view中登记
func newBreakpoint(m *Manager, region Region) *Breakpoint {
	return &Breakpoint{
		manager: m,
		key:     fmt.Sprintf("bp_%d", m.seqNo.Add(1)),
		initial: m.view.FullLine(region),
	}
}

// Key returns the key the breakpoint's marker is registered under.
func (b *Breakpoint) Key() string {
	return b.key
}

// InitialRegion returns the full line captured when b was created.
func (b *Breakpoint) InitialRegion() Region {
	return b.initial
}

// Region 返回断点当前所在的区间，view中没有登记时返回创建时的区间
func (b *Breakpoint) Region() Region {
	if regions := b.manager.view.Regions(b.key); len(regions) != 0 {
		return regions[0]
	}
	return b.initial
}

// Line 返回断点当前所在的行号，1-based
func (b *Breakpoint) Line() int {
	row, _ := b.manager.view.RowCol(b.Region().Begin)
	return row + 1
}

// Show 在view中登记断点标记
func (b *Breakpoint) Show() *Breakpoint {
	b.manager.view.AddRegions(b.key, []Region{b.initial}, b.manager.marker)
	return b
}

// Hide 从view中移除断点标记
func (b *Breakpoint) Hide() *Breakpoint {
	b.manager.view.EraseRegions(b.key)
	return b
}

// FormatCommand returns the pdb command that recreates b, e.g. `break /a.py:10`.
func (b *Breakpoint) FormatCommand() string {
	return fmt.Sprintf("break %s:%d", b.manager.view.FileName(), b.Line())
}

func (b *Breakpoint) String() string {
	return strconv.Itoa(b.Line())
}

// Breakpoints 断点列表，按添加顺序排列
type Breakpoints []*Breakpoint

// Lines returns the current line of every breakpoint.
func (bs Breakpoints) Lines() []int {
	lines := make([]int, 0, len(bs))
	for _, b := range bs {
		lines = append(lines, b.Line())
	}
	return lines
}

// Commands formats every breakpoint as a pdb command.
func (bs Breakpoints) Commands() []string {
	cmds := make([]string, 0, len(bs))
	for _, b := range bs {
		cmds = append(cmds, b.FormatCommand())
	}
	return cmds
}

func (bs Breakpoints) index(b *Breakpoint) int {
	for i, v := range bs {
		if v == b {
			return i
		}
	}
	return -1
}
