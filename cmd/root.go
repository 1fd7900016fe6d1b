/*
Copyright © 2020 hit.zhangjie@gmail.com

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

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hitzhangjie/pdburger/pkg/breakpoint"
	"github.com/hitzhangjie/pdburger/pkg/pdburger"
)

const (
	cfgRCFile       = "rcfile"
	cfgExportOnLoad = "export_on_load"
	cfgMarkerScope  = "marker.scope"
	cfgMarkerIcon   = "marker.icon"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdburger",
	Short: "track breakpoints in source files and export them to ~/.pdbrc",
	Long: `pdburger tracks breakpoints toggled in source buffers and keeps them in sync
with pdb's run-control file. Every time a buffer is saved or loaded, all
breakpoints are written as 'break <file>:<line>' commands, so the next pdb
session starts with them set.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pdburger.yaml)")
	rootCmd.PersistentFlags().String(cfgRCFile, breakpoint.DefaultRCFile, "pdb run-control file breakpoints are written to")
	viper.BindPFlag(cfgRCFile, rootCmd.PersistentFlags().Lookup(cfgRCFile))

	viper.SetDefault(cfgExportOnLoad, true)
	viper.SetDefault(cfgMarkerScope, breakpoint.DefaultMarker.Scope)
	viper.SetDefault(cfgMarkerIcon, breakpoint.DefaultMarker.Icon)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".pdburger" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".pdburger")
	}

	viper.SetEnvPrefix("pdburger")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// pluginOptions builds the plugin options from flags, config file and environment.
func pluginOptions() pdburger.Options {
	return pdburger.Options{
		RCFile:       viper.GetString(cfgRCFile),
		ExportOnLoad: viper.GetBool(cfgExportOnLoad),
		Marker: breakpoint.Marker{
			Scope:      viper.GetString(cfgMarkerScope),
			Icon:       viper.GetString(cfgMarkerIcon),
			Persistent: true,
		},
	}
}
