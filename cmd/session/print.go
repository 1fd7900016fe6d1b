package session

import (
	"github.com/spf13/cobra"
)

func newPrintCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:     "print [linespec]",
		Short:   "查看源码及断点标记",
		Aliases: []string{"p", "l"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBuffers,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := s.Current()
			if err != nil {
				return err
			}

			first, last := 1, buf.LineCount()
			if len(args) != 0 {
				if first, last, err = parseLineRange(args[0]); err != nil {
					return err
				}
			}
			s.styles.renderLines(cmd.OutOrStdout(), buf, first, last)
			return nil
		},
	}
}
