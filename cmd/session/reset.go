package session

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:     "reset",
		Short:   "清除当前buffer的所有断点",
		Aliases: []string{"clearall"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBreakpoints,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := s.Current()
			if err != nil {
				return err
			}
			if err = s.plugin.Reset(buf); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "清空断点成功")
			s.styles.renderStatus(cmd.OutOrStdout(), buf)
			return nil
		},
	}
}
