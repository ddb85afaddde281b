package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/lexodoro/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the lexodoro configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long: `Write config.yaml with the built-in defaults to the configuration
directory. An existing file is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := config.ResolveConfigDir(opts.configDir)
			_, statErr := os.Stat(filepath.Join(dir, config.ConfigFileExt))
			path, err := config.WriteDefault(dir)
			if err != nil {
				return err
			}
			if statErr == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "config already exists:", path)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	})
	return cmd
}
