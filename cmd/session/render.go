package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/hitzhangjie/pdburger/pkg/breakpoint"
	"github.com/hitzhangjie/pdburger/pkg/buffer"
	"github.com/hitzhangjie/pdburger/pkg/pdburger"
)

// styles 输出样式，颜色由输出目标是否为终端决定
type styles struct {
	marker lipgloss.Style
	cursor lipgloss.Style
	label  lipgloss.Style
	status lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		marker: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		cursor: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		label:  r.NewStyle().Foreground(lipgloss.Color("6")),
		status: r.NewStyle().Faint(true),
	}
}

func markerGlyph(m breakpoint.Marker) string {
	switch m.Icon {
	case "dot":
		return "●"
	case "circle":
		return "○"
	case "bookmark":
		return "◆"
	default:
		return "*"
	}
}

// renderLines 打印[first, last]行的源码，行号1-based，断点所在行显示标记，
// 当前可见位置所在行显示=>
func (st styles) renderLines(w io.Writer, buf *buffer.Buffer, first, last int) {
	if first < 1 {
		first = 1
	}
	if n := buf.LineCount(); last > n {
		last = n
	}

	cursor, _ := buf.RowCol(buf.Visible().Begin)
	for row := first - 1; row < last; row++ {
		gutter := ""
		if markers := buf.Markers(row); len(markers) != 0 {
			gutter = st.marker.Render(markerGlyph(markers[0]))
		}
		arrow := ""
		if row == cursor {
			arrow = st.cursor.Render("=>")
		}
		fmt.Fprintf(w, "%-2s %-2s\t%d\t%s\n", gutter, arrow, row+1, buf.Line(row))
	}
}

func (st styles) renderLabels(w io.Writer, labels []string) {
	if len(labels) == 0 {
		fmt.Fprintln(w, "no breakpoints")
		return
	}
	for _, label := range labels {
		fmt.Fprintln(w, st.label.Render(label))
	}
}

// renderStatus 打印状态栏信息，buffer有未保存修改时提示保存后才会导出
func (st styles) renderStatus(w io.Writer, buf *buffer.Buffer) {
	if buf.IsDirty() {
		fmt.Fprintln(w, st.status.Render("buffer modified, save it to export breakpoints"))
		return
	}
	if msg := buf.Status(pdburger.StatusKey); msg != "" {
		fmt.Fprintln(w, st.status.Render(msg))
	}
}
