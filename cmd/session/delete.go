package session

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hitzhangjie/pdburger/pkg/buffer"
)

func newDeleteCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <linespec>",
		Short:   "删除指定的行",
		Long:    "删除指定的行，后面的行及其断点会向上移动。被删除行上的断点会留在删除位置。",
		Aliases: []string{"d"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupEdit,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("参数错误")
			}
			buf, err := s.Current()
			if err != nil {
				return err
			}
			first, last, err := parseLineRange(args[0])
			if err != nil {
				return err
			}
			if n := buf.LineCount(); last > n {
				return fmt.Errorf("line %d out of range, buffer has %d lines", last, n)
			}

			buf.Erase(buffer.Region{
				Begin: buf.LineRegion(first - 1).Begin,
				End:   buf.LineRegion(last - 1).End,
			})
			s.styles.renderStatus(cmd.OutOrStdout(), buf)
			return nil
		},
	}
}
