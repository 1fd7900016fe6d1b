package session

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newOpenCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:     "open <file>",
		Short:   "打开源文件",
		Long:    "打开源文件，文件已打开时切换为当前buffer。文件加载后会导出所有断点。",
		Aliases: []string{"e", "edit"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBuffers,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("参数错误")
			}
			if err := s.Open(args[0]); err != nil {
				return err
			}
			buf, err := s.Current()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d lines\n", buf.FileName(), buf.LineCount())
			s.styles.renderStatus(cmd.OutOrStdout(), buf)
			return nil
		},
	}
}
