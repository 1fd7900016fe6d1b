package session

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBreaksCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:     "breaks",
		Short:   "列出所有buffer中的断点",
		Long:    "列出所有buffer中的断点，输出内容与导出到run-control文件的内容一致",
		Aliases: []string{"bs", "breakpoints"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBreakpoints,
		},
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range s.plugin.Registry().Breakpoints().Commands() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
		},
	}
}
