package session

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToggleCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [linespec...]",
		Short: "在选区所在行切换断点",
		Long: `在选区所在行切换断点：该行已有断点时删除，否则添加。

指定linespec时先用它们替换当前选区，linespec格式同select命令。
buffer没有未保存的修改时，切换后会立即导出所有断点。`,
		Aliases: []string{"b", "break", "t"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBreakpoints,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := s.Current()
			if err != nil {
				return err
			}
			if len(args) != 0 {
				regions, err := parseSelections(buf, args)
				if err != nil {
					return err
				}
				buf.SetSelections(regions...)
			}

			if err = s.plugin.Toggle(buf); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "breakpoints: %v\n", s.plugin.Manager(buf).Breakpoints().Lines())
			s.styles.renderStatus(cmd.OutOrStdout(), buf)
			return nil
		},
	}
}
