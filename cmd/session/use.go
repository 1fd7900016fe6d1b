package session

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newUseCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:     "use <buffer no.>",
		Short:   "切换当前buffer",
		Aliases: []string{"buffer"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBuffers,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("参数错误")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(s.buffers) {
				return fmt.Errorf("buffer %s not existed", args[0])
			}
			s.current = n - 1
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", s.buffers[s.current].FileName())
			return nil
		},
	}
}
