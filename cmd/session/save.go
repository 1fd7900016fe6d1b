package session

import (
	"github.com/spf13/cobra"
)

func newSaveCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:     "save",
		Short:   "保存当前buffer并导出断点",
		Aliases: []string{"w", "write"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBuffers,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := s.Current()
			if err != nil {
				return err
			}
			if err = buf.Save(); err != nil {
				return err
			}
			if err = s.plugin.OnPostSave(buf); err != nil {
				return err
			}
			s.styles.renderStatus(cmd.OutOrStdout(), buf)
			return nil
		},
	}
}
