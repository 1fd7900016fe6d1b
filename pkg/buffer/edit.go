package buffer

// Insert 在offset处插入文本，并调整所有区间和选区
func (b *Buffer) Insert(offset int, s string) {
	offset = b.clamp(offset)
	ins := []rune(s)
	if len(ins) == 0 {
		return
	}

	text := make([]rune, 0, len(b.text)+len(ins))
	text = append(text, b.text[:offset]...)
	text = append(text, ins...)
	text = append(text, b.text[offset:]...)
	b.text = text
	b.dirty = true

	b.remap(func(r Region) Region {
		return shiftInsert(r, offset, len(ins))
	})
}

// Erase 删除区间r内的文本，并调整所有区间和选区
func (b *Buffer) Erase(r Region) {
	begin, end := b.clamp(r.Begin), b.clamp(r.End)
	if begin > end {
		begin, end = end, begin
	}
	if begin == end {
		return
	}

	b.text = append(b.text[:begin:begin], b.text[end:]...)
	b.dirty = true

	b.remap(func(r Region) Region {
		return shiftErase(r, begin, end)
	})
}

func (b *Buffer) remap(fn func(Region) Region) {
	for _, kr := range b.regions {
		for i, r := range kr.regions {
			kr.regions[i] = fn(r)
		}
	}
	for i, r := range b.selections {
		b.selections[i] = fn(r)
	}
	b.visible = fn(b.visible)
}

// shiftInsert moves r for n runes inserted at offset at. A region starting at
// the insertion point moves with the text after it; an end equal to the
// insertion point stays put.
func shiftInsert(r Region, at, n int) Region {
	if r.Begin >= at {
		r.Begin += n
	}
	if r.End > at {
		r.End += n
	}
	if r.End < r.Begin {
		r.End = r.Begin
	}
	return r
}

// shiftErase moves r for the span [begin, end) being deleted. Points inside the
// span collapse to begin.
func shiftErase(r Region, begin, end int) Region {
	shift := func(pt int) int {
		switch {
		case pt < begin:
			return pt
		case pt >= end:
			return pt - (end - begin)
		default:
			return begin
		}
	}
	return Region{Begin: shift(r.Begin), End: shift(r.End)}
}
