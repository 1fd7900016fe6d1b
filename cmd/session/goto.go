package session

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGotoCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:   "goto [breakpoint no.]",
		Short: "跳转到断点所在行",
		Long: `跳转到断点所在行。

不指定编号时列出当前buffer的所有断点，编号从1开始，按添加顺序排列。`,
		Aliases: []string{"g"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBreakpoints,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := s.Current()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				s.styles.renderLabels(cmd.OutOrStdout(), s.plugin.GotoItems(buf))
				return nil
			}

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid breakpoint no.: %s", args[0])
			}
			brk, err := s.plugin.Goto(buf, n-1)
			if err != nil {
				return err
			}
			line := brk.Line()
			s.styles.renderLines(cmd.OutOrStdout(), buf, line-2, line+2)
			return nil
		},
	}
}
