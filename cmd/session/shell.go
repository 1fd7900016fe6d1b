package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/peterh/liner"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hitzhangjie/pdburger/pkg/buffer"
	"github.com/hitzhangjie/pdburger/pkg/pdburger"
)

const (
	cmdGroupAnnotation = "cmd_group_annotation"

	cmdGroupBreakpoints = "1-breaks"
	cmdGroupBuffers     = "2-buffers"
	cmdGroupEdit        = "3-edit"
	cmdGroupOthers      = "5-other"

	cmdGroupDelimiter = "-"

	prefix    = "pdburger> "
	descShort = "pdburger interactive editing commands"
)

var (
	errNoBuffer = errors.New("no buffer opened, use `open <file>` first")
)

// EditSession 交互式编辑会话
type EditSession struct {
	done   chan bool
	prefix string
	root   *cobra.Command
	liner  *liner.State
	last   string

	plugin  *pdburger.Plugin
	fs      afero.Fs
	styles  styles
	buffers []*buffer.Buffer
	current int

	defers []func()
}

// NewEditSession 创建一个交互式编辑会话，所有命令共享plugin中的断点状态
func NewEditSession(plugin *pdburger.Plugin, fs afero.Fs) *EditSession {
	s := &EditSession{
		done:    make(chan bool),
		prefix:  prefix,
		plugin:  plugin,
		fs:      fs,
		styles:  newStyles(os.Stdout),
		current: -1,
	}

	root := &cobra.Command{
		Use:           "help [command]",
		Short:         descShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		// 描述信息
		fmt.Fprintln(out, cmd.Short)
		fmt.Fprintln(out)

		// 使用信息
		fmt.Fprintln(out, cmd.Use)
		fmt.Fprintln(out, cmd.Flags().FlagUsages())

		// 命令分组
		fmt.Fprintln(out, helpMessageByGroups(cmd))
	})
	root.AddCommand(
		newOpenCmd(s),
		newBuffersCmd(s),
		newUseCmd(s),
		newPrintCmd(s),
		newSaveCmd(s),
		newSelectCmd(s),
		newInsertCmd(s),
		newDeleteCmd(s),
		newToggleCmd(s),
		newResetCmd(s),
		newListCmd(s),
		newGotoCmd(s),
		newBreaksCmd(s),
		newExitCmd(s),
	)
	s.root = root
	return s
}

// SetOutput redirects command output, stdout by default.
func (s *EditSession) SetOutput(w io.Writer) {
	s.root.SetOut(w)
	s.root.SetErr(w)
	s.styles = newStyles(w)
}

// Start 启动交互循环，直到执行exit或输入结束
func (s *EditSession) Start() {
	s.liner = liner.NewLiner()
	s.liner.SetCompleter(s.completer)
	s.liner.SetTabCompletionStyle(liner.TabPrints)
	s.liner.SetCtrlCAborts(true)

	defer func() {
		for idx := len(s.defers) - 1; idx >= 0; idx-- {
			s.defers[idx]()
		}
	}()
	defer s.liner.Close()

	for {
		select {
		case <-s.done:
			return
		default:
		}

		txt, err := s.liner.Prompt(s.prefix)
		if err == liner.ErrPromptAborted || err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input err: %v\n", err)
			return
		}

		txt = strings.TrimSpace(txt)
		if len(txt) != 0 {
			s.last = txt
			s.liner.AppendHistory(txt)
		} else {
			txt = s.last
		}

		if err := s.Exec(txt); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
}

// Exec runs a single command line.
func (s *EditSession) Exec(txt string) error {
	args := strings.Fields(txt)
	if len(args) == 0 {
		return nil
	}
	resetFlags(s.root)
	s.root.SetArgs(args)
	return s.root.Execute()
}

// resetFlags 恢复命令树中所有flag的默认值
//
// cobra keeps parsed flag values across Execute calls, so a `toggle -h` would
// otherwise leave the help flag set and turn every later toggle into help.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func (s *EditSession) AtExit(fn func()) *EditSession {
	s.defers = append(s.defers, fn)
	return s
}

func (s *EditSession) Stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// Open 打开文件，已打开的文件直接切换为当前buffer
func (s *EditSession) Open(file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	for idx, b := range s.buffers {
		if b.FileName() == abs {
			s.current = idx
			return nil
		}
	}

	buf, err := buffer.Open(s.fs, abs)
	if err != nil {
		return err
	}
	s.buffers = append(s.buffers, buf)
	s.current = len(s.buffers) - 1

	return s.plugin.OnLoad(buf)
}

// ToggleAt 在file:linespec指定的位置切换断点，文件未打开时先打开
func (s *EditSession) ToggleAt(loc string) error {
	file, spec, err := parseLocation(loc)
	if err != nil {
		return err
	}
	if err = s.Open(file); err != nil {
		return err
	}
	buf, err := s.Current()
	if err != nil {
		return err
	}
	regions, err := parseSelections(buf, []string{spec})
	if err != nil {
		return err
	}
	buf.SetSelections(regions...)
	return s.plugin.Toggle(buf)
}

// Buffers returns the opened buffers in opening order.
func (s *EditSession) Buffers() []*buffer.Buffer {
	return s.buffers
}

// Current returns the active buffer.
func (s *EditSession) Current() (*buffer.Buffer, error) {
	if s.current < 0 || s.current >= len(s.buffers) {
		return nil, errNoBuffer
	}
	return s.buffers[s.current], nil
}

// completer 补全命令名及别名，结果去重并排序
func (s *EditSession) completer(line string) []string {
	seen := map[string]bool{}
	for _, c := range s.root.Commands() {
		for _, name := range append([]string{c.Name()}, c.Aliases...) {
			if strings.HasPrefix(name, line) {
				seen[name] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// helpMessageByGroups 按照命令分组展示帮助信息，分组名形如"1-breaks"，
// 前缀决定分组顺序，未分组的命令放入other组
func helpMessageByGroups(cmd *cobra.Command) string {
	groups := map[string][]*cobra.Command{}
	for _, c := range cmd.Commands() {
		group, ok := c.Annotations[cmdGroupAnnotation]
		if !ok {
			group = cmdGroupOthers
		}
		groups[group] = append(groups[group], c)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 0, 8, 1, ' ', 0)
	for _, name := range names {
		cmds := groups[name]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })

		title := name
		if idx := strings.Index(name, cmdGroupDelimiter); idx >= 0 {
			title = name[idx+1:]
		}
		fmt.Fprintf(tw, "- [%s]\n", title)
		for _, c := range cmds {
			fmt.Fprintf(tw, "  %s\t%s\n", c.Name(), c.Short)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
	return buf.String()
}
