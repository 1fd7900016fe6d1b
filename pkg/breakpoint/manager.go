package breakpoint

import (
	"errors"
	"fmt"

	"go.uber.org/atomic"
)

var (
	ErrBreakpointNotExisted = errors.New("breakpoint not existed")
)

// Manager 管理一个buffer中的所有断点，断点之间互不相交
type Manager struct {
	view        View
	marker      Marker
	breakpoints Breakpoints
	seqNo       *atomic.Uint64 // 生成断点key
}

// NewManager creates an empty manager for view. Markers are drawn with marker.
func NewManager(view View, marker Marker) *Manager {
	return &Manager{
		view:   view,
		marker: marker,
		seqNo:  atomic.NewUint64(0),
	}
}

// View returns the buffer the manager belongs to.
func (m *Manager) View() View {
	return m.view
}

// Len returns the number of breakpoints.
func (m *Manager) Len() int {
	return len(m.breakpoints)
}

// Set 显示断点并追加到列表末尾
func (m *Manager) Set(b *Breakpoint) {
	m.breakpoints = append(m.breakpoints, b.Show())
}

// Unset 隐藏断点并从列表中移除
func (m *Manager) Unset(b *Breakpoint) error {
	idx := m.breakpoints.index(b)
	if idx < 0 {
		return ErrBreakpointNotExisted
	}
	b.Hide()
	m.breakpoints = append(m.breakpoints[:idx], m.breakpoints[idx+1:]...)
	return nil
}

// Toggle 在region所在行切换断点：
// - 如果已有断点的当前区间与该行相交，删除第一个相交的断点；
// - 否则在该行添加断点.
//
// 返回true表示添加了断点，false表示删除了断点.
func (m *Manager) Toggle(region Region) bool {
	candidate := newBreakpoint(m, region)
	for _, b := range m.breakpoints {
		if b.Region().Intersects(candidate.initial) {
			// b is taken from the list, so Unset cannot miss
			_ = m.Unset(b)
			return false
		}
	}
	m.Set(candidate)
	return true
}

// Reset 清除所有断点
func (m *Manager) Reset() {
	for _, b := range m.breakpoints {
		b.Hide()
	}
	m.breakpoints = nil
}

// Breakpoints returns a copy of the breakpoint list in display order; the
// slice index is the breakpoint's 0-based position.
func (m *Manager) Breakpoints() Breakpoints {
	bs := make(Breakpoints, len(m.breakpoints))
	copy(bs, m.breakpoints)
	return bs
}

// At 返回第idx个断点，idx从0开始
func (m *Manager) At(idx int) (*Breakpoint, error) {
	if idx < 0 || idx >= len(m.breakpoints) {
		return nil, ErrBreakpointNotExisted
	}
	return m.breakpoints[idx], nil
}

// Labels returns picker labels in display order, "Breakpoint 1: 12" for the first one.
func (m *Manager) Labels() []string {
	labels := make([]string, 0, len(m.breakpoints))
	for i, b := range m.breakpoints {
		labels = append(labels, fmt.Sprintf("Breakpoint %d: %d", i+1, b.Line()))
	}
	return labels
}

func (m *Manager) String() string {
	return fmt.Sprintf("(%s, %v)", m.view.FileName(), m.breakpoints.Lines())
}
