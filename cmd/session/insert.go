package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInsertCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <lineno> <text>",
		Short: "在指定行之前插入一行",
		Long: `在指定行之前插入一行文本，原来的行及其断点会向下移动。

buffer修改后，需要保存才会导出断点。`,
		Aliases:            []string{"i"},
		DisableFlagParsing: true,
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupEdit,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("参数错误")
			}
			buf, err := s.Current()
			if err != nil {
				return err
			}
			lineno, err := parseLineno(args[0])
			if err != nil {
				return err
			}
			if lineno > buf.LineCount() {
				return fmt.Errorf("line %d out of range, buffer has %d lines", lineno, buf.LineCount())
			}

			buf.Insert(buf.TextPoint(lineno-1, 0), strings.Join(args[1:], " ")+"\n")
			s.styles.renderStatus(cmd.OutOrStdout(), buf)
			return nil
		},
	}
}
