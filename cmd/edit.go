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
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hitzhangjie/pdburger/cmd/session"
	"github.com/hitzhangjie/pdburger/pkg/pdburger"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [file...]",
	Short: "open source files and toggle breakpoints interactively",
	Long: `Open source files and toggle breakpoints interactively.

Every opened file is exported to the run-control file once loaded,
and again whenever it is saved from the shell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plugin := pdburger.New(pluginOptions())
		s := session.NewEditSession(plugin, afero.NewOsFs())
		s.AtExit(func() {
			// unsaved edits are dropped, the run-control file keeps the last saved lines
			for _, buf := range s.Buffers() {
				if buf.IsDirty() {
					fmt.Fprintf(os.Stderr, "%s has unsaved changes, discarded\n", buf.FileName())
				}
			}
		})

		for _, file := range args {
			if err := s.Open(file); err != nil {
				fmt.Fprintf(os.Stderr, "open %s, err: %v\n", file, err)
			}
		}
		s.Start()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
