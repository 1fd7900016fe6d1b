/*
Copyright © 2021 hit.zhangjie@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hitzhangjie/pdburger/cmd/session"
	"github.com/hitzhangjie/pdburger/pkg/pdburger"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [file:linespec...]",
	Short: "write breakpoints at the given locations to the run-control file",
	Long: `Toggle a breakpoint at every location and write them all to the run-control file.

A location is file:lineno or file:first-last, like main.py:10. Giving the
same line twice toggles it off again. Without locations the file is
cleared, so pdb starts without breakpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pluginOptions()
		opts.ExportOnLoad = false
		plugin := pdburger.New(opts)
		s := session.NewEditSession(plugin, afero.NewOsFs())

		for _, loc := range args {
			if err := s.ToggleAt(loc); err != nil {
				return fmt.Errorf("toggle %s: %w", loc, err)
			}
		}

		exporter := plugin.Exporter()
		n, err := exporter.Export(plugin.Registry().Breakpoints())
		if err != nil {
			return err
		}
		fmt.Println(exporter.Status(n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
