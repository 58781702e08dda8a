/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for yevu.
package resolve

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/yevu/config"
	"bennypowers.dev/yevu/fs"
	"bennypowers.dev/yevu/importer"
	"bennypowers.dev/yevu/internal/logger"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <specifier>",
	Short: "Resolve an import specifier to a file path",
	Long: `Resolve an @import-style specifier the way a preprocessor importer would:
local files first, then node-style packages, across the configured
include paths, the importing file's directory, and the project root.

Exit status is 0 when the specifier resolves, 2 when nothing matched
(the host would fall back to its default resolution), and 1 on failure.

Examples:
  # Resolve relative to an importing file
  yevu resolve foo --from src/main.scss

  # Resolve with extra include paths
  yevu resolve variables --include-path styles --include-path vendor

  # Resolve a package entry point
  yevu resolve some-lib --root /path/to/project`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("from", "f", "", "Previously resolved file containing the import")
	Cmd.Flags().StringArrayP("include-path", "I", nil, "Additional include path (repeatable)")
}

func run(cmd *cobra.Command, args []string) error {
	specifier := args[0]
	prevFile, _ := cmd.Flags().GetString("from")
	includePaths, _ := cmd.Flags().GetStringArray("include-path")

	// Flags and environment via viper, then config file for anything unset
	flagRoot := viper.GetString("root")
	extension := viper.GetString("extension")

	root := flagRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determining working directory: %w", err)
		}
		root = wd
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, root)
	if extension == "" {
		extension = cfg.NormalizedExtension()
	}
	if flagRoot == "" && cfg.Root != "" {
		root = cfg.Root
	}

	configuredPaths, err := cfg.ExpandIncludePaths(filesystem, root)
	if err != nil {
		return fmt.Errorf("expanding include paths: %w", err)
	}

	im, err := importer.New(importer.Options{
		Root:      root,
		Extension: extension,
		FS:        filesystem,
	})
	if err != nil {
		return err
	}

	// CLI include paths take precedence over configured ones
	result, err := im.Resolve(specifier, prevFile, importer.ResolveOptions{
		IncludePaths: append(includePaths, configuredPaths...),
	})
	if err != nil {
		var nf *importer.NotFoundError
		if errors.As(err, &nf) && nf.Unwrap() != nil {
			logger.Warn("%v", nf.Unwrap())
		}
		return err
	}
	if result == nil {
		logger.Info("no result for %s; host default resolution applies", specifier)
		os.Exit(2)
	}

	fmt.Println(result.File)
	return nil
}
