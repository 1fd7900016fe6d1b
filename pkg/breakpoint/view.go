package breakpoint

// Region 文本区间，半开区间 [Begin, End)，单位为rune偏移
type Region struct {
	Begin int
	End   int
}

// Intersects 检查r与o是否相交，相等的区间（包括空区间）也视为相交
func (r Region) Intersects(o Region) bool {
	if r == o {
		return true
	}
	return r.Begin < o.End && o.Begin < r.End
}

// Marker describes how a host draws a breakpoint marker.
type Marker struct {
	Scope      string
	Icon       string
	Persistent bool
}

// DefaultMarker 默认断点标记样式
var DefaultMarker = Marker{
	Scope:      "pdburger_breakpoint",
	Icon:       "dot",
	Persistent: true,
}

// View is the part of a host editor buffer the breakpoint model depends on.
//
// The host owns keyed regions: once added, it keeps them anchored to the text
// across edits, so a breakpoint never caches its own position.
type View interface {
	// ID identifies the buffer for the lifetime of the process.
	ID() string
	// FileName returns the absolute path of the file backing the buffer.
	FileName() string
	// FullLine expands r to whole lines, including the trailing newline.
	FullLine(r Region) Region
	// RowCol maps an offset to a 0-based row and column.
	RowCol(offset int) (row, col int)
	AddRegions(key string, regions []Region, marker Marker)
	Regions(key string) []Region
	EraseRegions(key string)
}
