package session

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSelectCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:   "select <linespec>...",
		Short: "设置选区",
		Long: `设置当前buffer的选区，每个linespec对应一个选区。

linespec格式:
- 行号，如 10
- 起始行-结束行，如 10-12`,
		Aliases: []string{"sel"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupEdit,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("need linespec")
			}
			buf, err := s.Current()
			if err != nil {
				return err
			}
			regions, err := parseSelections(buf, args)
			if err != nil {
				return err
			}
			buf.SetSelections(regions...)
			fmt.Fprintf(cmd.OutOrStdout(), "%d selections\n", len(regions))
			return nil
		},
	}
}
