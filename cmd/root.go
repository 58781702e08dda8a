/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for yevu.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/yevu/cmd/resolve"
	"bennypowers.dev/yevu/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "yevu",
	Short: "Resolve SCSS import specifiers to files on disk",
	Long:  `yevu resolves @import-style module specifiers against local files, include paths, and node-style packages, the way a preprocessor importer would.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("root", "r", "", "Project root (default: working directory)")
	rootCmd.PersistentFlags().StringP("extension", "e", "", "Stylesheet extension (default: .scss)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("extension", rootCmd.PersistentFlags().Lookup("extension"))
	viper.SetEnvPrefix("YEVU")
	viper.AutomaticEnv()

	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
