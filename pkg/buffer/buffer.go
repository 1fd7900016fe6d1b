package buffer

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/hitzhangjie/pdburger/pkg/breakpoint"
)

// Region is an alias so callers need not import the breakpoint package for offsets.
type Region = breakpoint.Region

type keyedRegions struct {
	regions []Region
	marker  breakpoint.Marker
}

// Buffer 内存中的文本buffer
type Buffer struct {
	id   string
	fs   afero.Fs
	path string
	text []rune

	regions    map[string]*keyedRegions
	selections []Region
	status     map[string]string
	visible    Region
	dirty      bool
}

// New creates a buffer for path holding text. The buffer is not dirty.
func New(fs afero.Fs, path, text string) *Buffer {
	return &Buffer{
		id:      uuid.NewString(),
		fs:      fs,
		path:    path,
		text:    []rune(text),
		regions: map[string]*keyedRegions{},
		status:  map[string]string{},
	}
}

// Open 读取文件并创建buffer，文件名会被转换为绝对路径
func Open(fs afero.Fs, path string) (*Buffer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dat, err := afero.ReadFile(fs, abs)
	if err != nil {
		return nil, fmt.Errorf("read file err: %v", err)
	}
	return New(fs, abs, string(dat)), nil
}

// Save 将buffer内容写回文件
func (b *Buffer) Save() error {
	if err := afero.WriteFile(b.fs, b.path, []byte(string(b.text)), 0644); err != nil {
		return fmt.Errorf("write file err: %v", err)
	}
	b.dirty = false
	return nil
}

func (b *Buffer) ID() string { return b.id }

func (b *Buffer) FileName() string { return b.path }

func (b *Buffer) Text() string { return string(b.text) }

// Size returns the length of the text in runes.
func (b *Buffer) Size() int { return len(b.text) }

func (b *Buffer) IsDirty() bool { return b.dirty }

func (b *Buffer) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(b.text) {
		return len(b.text)
	}
	return offset
}

// lineStart returns the offset of the first rune on the line containing offset.
func (b *Buffer) lineStart(offset int) int {
	offset = b.clamp(offset)
	for offset > 0 && b.text[offset-1] != '\n' {
		offset--
	}
	return offset
}

// lineEnd returns the offset of the newline ending the line containing offset,
// or the text length on the last line.
func (b *Buffer) lineEnd(offset int) int {
	offset = b.clamp(offset)
	for offset < len(b.text) && b.text[offset] != '\n' {
		offset++
	}
	return offset
}

// RowCol 将偏移转换为0-based的行列号
func (b *Buffer) RowCol(offset int) (row, col int) {
	offset = b.clamp(offset)
	start := 0
	for i := 0; i < offset; i++ {
		if b.text[i] == '\n' {
			row++
			start = i + 1
		}
	}
	return row, offset - start
}

// TextPoint is the inverse of RowCol. Out of range rows and columns are clamped.
func (b *Buffer) TextPoint(row, col int) int {
	offset := 0
	for r := 0; r < row; r++ {
		end := b.lineEnd(offset)
		if end == len(b.text) {
			break
		}
		offset = end + 1
	}
	if col < 0 {
		col = 0
	}
	if end := b.lineEnd(offset); offset+col > end {
		return end
	}
	return offset + col
}

// LineCount returns the number of lines; an empty buffer has one line.
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Line returns the text of the 0-based row without its newline.
func (b *Buffer) Line(row int) string {
	start := b.TextPoint(row, 0)
	return string(b.text[start:b.lineEnd(start)])
}

// FullLine 将r扩展为整行，包含行尾换行符
func (b *Buffer) FullLine(r Region) Region {
	end := r.End
	if end < r.Begin {
		end = r.Begin
	}
	e := b.lineEnd(end)
	if e < len(b.text) {
		e++
	}
	return Region{Begin: b.lineStart(r.Begin), End: e}
}

// LineRegion returns the full line of the 0-based row.
func (b *Buffer) LineRegion(row int) Region {
	pt := b.TextPoint(row, 0)
	return b.FullLine(Region{Begin: pt, End: pt})
}

// AddRegions 登记key对应的区间，已存在时覆盖
func (b *Buffer) AddRegions(key string, regions []Region, marker breakpoint.Marker) {
	rs := make([]Region, len(regions))
	copy(rs, regions)
	b.regions[key] = &keyedRegions{regions: rs, marker: marker}
}

// Regions returns the current regions registered under key, nil if none.
func (b *Buffer) Regions(key string) []Region {
	kr, ok := b.regions[key]
	if !ok {
		return nil
	}
	rs := make([]Region, len(kr.regions))
	copy(rs, kr.regions)
	return rs
}

func (b *Buffer) EraseRegions(key string) {
	delete(b.regions, key)
}

// Markers 返回起始于row行的所有区间标记，按key排序
func (b *Buffer) Markers(row int) []breakpoint.Marker {
	keys := make([]string, 0, len(b.regions))
	for k := range b.regions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var markers []breakpoint.Marker
	for _, k := range keys {
		kr := b.regions[k]
		for _, r := range kr.regions {
			if n, _ := b.RowCol(r.Begin); n == row {
				markers = append(markers, kr.marker)
				break
			}
		}
	}
	return markers
}

// SetSelections replaces the current selections.
func (b *Buffer) SetSelections(rs ...Region) {
	b.selections = make([]Region, 0, len(rs))
	for _, r := range rs {
		b.selections = append(b.selections, Region{Begin: b.clamp(r.Begin), End: b.clamp(r.End)})
	}
}

// Selections returns the current selections.
func (b *Buffer) Selections() []Region {
	rs := make([]Region, len(b.selections))
	copy(rs, b.selections)
	return rs
}

// SetStatus 设置状态栏信息
func (b *Buffer) SetStatus(key, msg string) {
	b.status[key] = msg
}

func (b *Buffer) Status(key string) string {
	return b.status[key]
}

// ShowAt scrolls the buffer to r and puts the cursor at its start.
func (b *Buffer) ShowAt(r Region) {
	b.visible = r
	b.SetSelections(Region{Begin: r.Begin, End: r.Begin})
}

// Visible returns the region last passed to ShowAt.
func (b *Buffer) Visible() Region {
	return b.visible
}
