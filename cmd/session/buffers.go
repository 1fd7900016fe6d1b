package session

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newBuffersCmd(s *EditSession) *cobra.Command {
	return &cobra.Command{
		Use:     "buffers",
		Short:   "列出所有打开的buffer",
		Aliases: []string{"ls"},
		Annotations: map[string]string{
			cmdGroupAnnotation: cmdGroupBuffers,
		},
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, ' ', 0)
			defer tw.Flush()

			for idx, buf := range s.buffers {
				flags := " "
				if idx == s.current {
					flags = "%"
				}
				if buf.IsDirty() {
					flags += "+"
				}
				count := 0
				if m, ok := s.plugin.Registry().Lookup(buf.ID()); ok {
					count = m.Len()
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d breakpoints\n", idx+1, flags, buf.FileName(), count)
			}
		},
	}
}
