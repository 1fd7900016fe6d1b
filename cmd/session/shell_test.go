package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitzhangjie/pdburger/pkg/breakpoint"
	"github.com/hitzhangjie/pdburger/pkg/pdburger"
)

const rcfile = "/home/dev/.pdbrc"

func newTestSession(t *testing.T, files map[string]string) (*EditSession, afero.Fs, *bytes.Buffer) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, text := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(text), 0644))
	}

	plugin := pdburger.NewWithExporter(pdburger.Options{ExportOnLoad: true},
		&breakpoint.Exporter{Fs: fs, Path: rcfile})
	s := NewEditSession(plugin, fs)

	out := &bytes.Buffer{}
	s.SetOutput(out)
	return s, fs, out
}

func readRC(t *testing.T, fs afero.Fs) string {
	t.Helper()
	dat, err := afero.ReadFile(fs, rcfile)
	require.NoError(t, err)
	return string(dat)
}

func TestEditSession_NoBuffer(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	assert.ErrorIs(t, s.Exec("toggle 1"), errNoBuffer)
	assert.ErrorIs(t, s.Exec("list"), errNoBuffer)
}

func TestEditSession_OpenExports(t *testing.T) {
	s, fs, out := newTestSession(t, map[string]string{"/src/a.py": "pass\n"})

	require.NoError(t, s.Exec("open /src/a.py"))
	assert.Equal(t, "\n", readRC(t, fs))
	assert.Contains(t, out.String(), "/src/a.py: 2 lines")
	assert.Contains(t, out.String(), "No breakpoints on /home/dev/.pdbrc")

	// opening an open file switches to it instead of loading it twice
	require.NoError(t, s.Exec("open /src/a.py"))
	assert.Len(t, s.buffers, 1)

	assert.Error(t, s.Exec("open /src/missing.py"))
}

func TestEditSession_ToggleAndEdit(t *testing.T) {
	s, fs, out := newTestSession(t, map[string]string{
		"/src/a.py": "a = 1\nb = 2\nc = 3\n",
	})
	require.NoError(t, s.Open("/src/a.py"))

	require.NoError(t, s.Exec("toggle 3 1"))
	assert.Equal(t, "break /src/a.py:3\nbreak /src/a.py:1\n", readRC(t, fs))
	assert.Contains(t, out.String(), "breakpoints: [3 1]")

	// edits move the markers, export waits for the save
	require.NoError(t, s.Exec("insert 1 import os"))
	require.NoError(t, s.Exec("delete 3"))
	assert.Equal(t, "break /src/a.py:3\nbreak /src/a.py:1\n", readRC(t, fs))

	require.NoError(t, s.Exec("save"))
	assert.Equal(t, "break /src/a.py:3\nbreak /src/a.py:2\n", readRC(t, fs))

	dat, err := afero.ReadFile(fs, "/src/a.py")
	require.NoError(t, err)
	assert.Equal(t, "import os\na = 1\nc = 3\n", string(dat))

	out.Reset()
	require.NoError(t, s.Exec("list"))
	assert.Equal(t, "(/src/a.py, [3 2])\n", out.String())
}

func TestEditSession_SelectThenToggle(t *testing.T) {
	s, fs, _ := newTestSession(t, map[string]string{
		"/src/a.py": "a = 1\nb = 2\nc = 3\n",
	})
	require.NoError(t, s.Open("/src/a.py"))

	require.NoError(t, s.Exec("select 2-3"))
	require.NoError(t, s.Exec("toggle"))
	// a selection across two lines marks the line it starts on
	assert.Equal(t, "break /src/a.py:2\n", readRC(t, fs))

	assert.Error(t, s.Exec("select 0"))
	assert.Error(t, s.Exec("select 3-2"))
	assert.Error(t, s.Exec("select 9"))
}

func TestEditSession_ResetAndBreaks(t *testing.T) {
	s, fs, out := newTestSession(t, map[string]string{
		"/src/a.py": "a = 1\nb = 2\n",
		"/src/b.py": "x = 1\ny = 2\n",
	})
	require.NoError(t, s.Open("/src/a.py"))
	require.NoError(t, s.Exec("toggle 2"))
	require.NoError(t, s.Open("/src/b.py"))
	require.NoError(t, s.Exec("toggle 1"))

	out.Reset()
	require.NoError(t, s.Exec("breaks"))
	assert.Equal(t, "break /src/a.py:2\nbreak /src/b.py:1\n", out.String())

	require.NoError(t, s.Exec("reset"))
	assert.Equal(t, "break /src/a.py:2\n", readRC(t, fs))

	require.NoError(t, s.Exec("use 1"))
	require.NoError(t, s.Exec("reset"))
	assert.Equal(t, "\n", readRC(t, fs))

	assert.Error(t, s.Exec("use 3"))
}

func TestEditSession_Goto(t *testing.T) {
	s, _, out := newTestSession(t, map[string]string{
		"/src/a.py": strings.Repeat("pass\n", 9),
	})
	require.NoError(t, s.Open("/src/a.py"))
	require.NoError(t, s.Exec("toggle 7"))
	require.NoError(t, s.Exec("toggle 3"))

	out.Reset()
	require.NoError(t, s.Exec("goto"))
	assert.Equal(t, "Breakpoint 1: 7\nBreakpoint 2: 3\n", out.String())

	require.NoError(t, s.Exec("goto 2"))
	buf, err := s.Current()
	require.NoError(t, err)
	row, _ := buf.RowCol(buf.Visible().Begin)
	assert.Equal(t, 2, row)

	assert.Error(t, s.Exec("goto 3"))
	assert.Error(t, s.Exec("goto x"))
}

func TestEditSession_Print(t *testing.T) {
	s, _, out := newTestSession(t, map[string]string{
		"/src/a.py": "a = 1\nb = 2\nc = 3",
	})
	require.NoError(t, s.Open("/src/a.py"))
	require.NoError(t, s.Exec("toggle 2"))

	out.Reset()
	require.NoError(t, s.Exec("print"))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.NotContains(t, lines[0], "●")
	assert.Contains(t, lines[1], "●")
	assert.Contains(t, lines[1], "b = 2")
	assert.NotContains(t, lines[2], "●")
}

func TestEditSession_Exit(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	require.NoError(t, s.Exec("exit"))
	require.NoError(t, s.Exec("exit"))

	select {
	case <-s.done:
	default:
		t.Fatal("session not stopped")
	}
}

func TestEditSession_HelpFlagDoesNotStick(t *testing.T) {
	s, fs, out := newTestSession(t, map[string]string{"/src/a.py": "a = 1\nb = 2\n"})
	require.NoError(t, s.Open("/src/a.py"))

	require.NoError(t, s.Exec("toggle -h"))
	assert.Contains(t, out.String(), "Usage:")

	require.NoError(t, s.Exec("toggle 1"))
	buf, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, s.plugin.Manager(buf).Len())
	assert.Equal(t, "break /src/a.py:1\n", readRC(t, fs))
}

func TestEditSession_ToggleAt(t *testing.T) {
	s, fs, _ := newTestSession(t, map[string]string{
		"/src/a.py": "a = 1\nb = 2\nc = 3\nd = 4\n",
		"/src/b.py": "x = 1\ny = 2\n",
	})

	require.NoError(t, s.ToggleAt("/src/a.py:2"))
	require.NoError(t, s.ToggleAt("/src/b.py:1-2"))
	require.NoError(t, s.ToggleAt("/src/a.py:4"))
	assert.Len(t, s.Buffers(), 2)
	assert.Equal(t, "break /src/a.py:2\nbreak /src/a.py:4\nbreak /src/b.py:1\n", readRC(t, fs))

	// the same location again toggles it off
	require.NoError(t, s.ToggleAt("/src/a.py:4"))
	assert.Equal(t, "break /src/a.py:2\nbreak /src/b.py:1\n", readRC(t, fs))

	assert.Error(t, s.ToggleAt("/src/a.py"))
	assert.Error(t, s.ToggleAt("/src/a.py:"))
	assert.Error(t, s.ToggleAt("/src/a.py:9"))
	assert.Error(t, s.ToggleAt("/src/missing.py:1"))
}

func TestParseLineRange(t *testing.T) {
	type arg struct {
		spec        string
		first, last int
		ok          bool
	}
	args := []arg{
		{"10", 10, 10, true},
		{"3-5", 3, 5, true},
		{"0", 0, 0, false},
		{"5-3", 0, 0, false},
		{"1-2-3", 0, 0, false},
		{"x", 0, 0, false},
		{"-1", 0, 0, false},
	}
	for _, arg := range args {
		first, last, err := parseLineRange(arg.spec)
		if !arg.ok {
			assert.Error(t, err, arg.spec)
			continue
		}
		require.NoError(t, err, arg.spec)
		assert.Equal(t, arg.first, first)
		assert.Equal(t, arg.last, last)
	}
}

func TestHelpMessageByGroups(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	msg := helpMessageByGroups(s.root)

	breaks := strings.Index(msg, "- [breaks]")
	buffers := strings.Index(msg, "- [buffers]")
	edit := strings.Index(msg, "- [edit]")
	other := strings.Index(msg, "- [other]")
	assert.True(t, breaks >= 0 && breaks < buffers && buffers < edit && edit < other, msg)
	assert.Contains(t, msg, "toggle")
}

func TestCompleter(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	assert.Contains(t, s.completer("tog"), "toggle")
	assert.Contains(t, s.completer("bs"), "bs")
}
