package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hitzhangjie/pdburger/pkg/breakpoint"
	"github.com/hitzhangjie/pdburger/pkg/buffer"
)

// must be form lineno or first-last, like 10 or 10-12, lines are 1-based
func parseLineRange(s string) (first, last int, err error) {
	vals := strings.Split(s, "-")
	if len(vals) > 2 {
		err = fmt.Errorf("invalid linespec: %s, must be lineno or first-last", s)
		return
	}

	if first, err = parseLineno(vals[0]); err != nil {
		return
	}
	last = first
	if len(vals) == 2 {
		if last, err = parseLineno(vals[1]); err != nil {
			return
		}
	}
	if last < first {
		err = fmt.Errorf("invalid linespec: %s, last line before first", s)
	}
	return
}

func parseLineno(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid lineno: %s", s)
	}
	return v, nil
}

// lineRegion 返回从first行开头到last行末尾（不含换行）的区间
func lineRegion(buf *buffer.Buffer, first, last int) (breakpoint.Region, error) {
	if last > buf.LineCount() {
		return breakpoint.Region{}, fmt.Errorf("line %d out of range, buffer has %d lines", last, buf.LineCount())
	}
	begin := buf.TextPoint(first-1, 0)
	end := buf.TextPoint(last-1, len([]rune(buf.Line(last-1))))
	return breakpoint.Region{Begin: begin, End: end}, nil
}

// parseSelections converts linespecs into regions of buf.
func parseSelections(buf *buffer.Buffer, specs []string) ([]breakpoint.Region, error) {
	regions := make([]breakpoint.Region, 0, len(specs))
	for _, spec := range specs {
		first, last, err := parseLineRange(spec)
		if err != nil {
			return nil, err
		}
		r, err := lineRegion(buf, first, last)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// must be form file:linespec, like main.py:10 or main.py:10-12
func parseLocation(loc string) (file, spec string, err error) {
	idx := strings.LastIndex(loc, ":")
	if idx <= 0 || idx == len(loc)-1 {
		err = fmt.Errorf("invalid location: %s, must be file:linespec", loc)
		return
	}
	return loc[:idx], loc[idx+1:], nil
}
