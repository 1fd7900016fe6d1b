package session

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "打印当前buffer断点管理器的调试信息",
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBreakpoints,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := s.Current()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.plugin.List(buf))
			return nil
		},
	}
}
