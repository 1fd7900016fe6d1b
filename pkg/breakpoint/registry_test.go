package breakpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hitzhangjie/pdburger/pkg/breakpoint"
)

func TestRegistry_Manager(t *testing.T) {
	r := breakpoint.NewRegistry(breakpoint.DefaultMarker)
	a := newBuffer("/src/a.py", source)
	b := newBuffer("/src/b.py", source)

	ma := r.Manager(a)
	assert.Same(t, ma, r.Manager(a))
	assert.Same(t, a, ma.View())

	mb := r.Manager(b)
	assert.NotSame(t, ma, mb)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []*breakpoint.Manager{ma, mb}, r.Managers())

	got, ok := r.Lookup(b.ID())
	assert.True(t, ok)
	assert.Same(t, mb, got)

	_, ok = r.Lookup("closed")
	assert.False(t, ok)
}

func TestRegistry_Breakpoints(t *testing.T) {
	r := breakpoint.NewRegistry(breakpoint.DefaultMarker)
	a := newBuffer("/src/a.py", source)
	b := newBuffer("/src/b.py", source)

	r.Manager(b).Toggle(caret(b, 2))
	r.Manager(a).Toggle(caret(a, 4))
	r.Manager(b).Toggle(caret(b, 1))

	// registration order first, then toggle order within a buffer
	assert.Equal(t, []string{
		"break /src/b.py:2",
		"break /src/b.py:1",
		"break /src/a.py:4",
	}, r.Breakpoints().Commands())
}

func TestRegistry_EntriesSurviveReset(t *testing.T) {
	r := breakpoint.NewRegistry(breakpoint.DefaultMarker)
	a := newBuffer("/src/a.py", source)

	r.Manager(a).Toggle(caret(a, 1))
	r.Manager(a).Reset()

	assert.Equal(t, 1, r.Len())
	assert.Empty(t, r.Breakpoints())
}
