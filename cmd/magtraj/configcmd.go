package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/magtraj/internal/config"
)

var forceInit bool

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage magtraj config files",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config as yaml (default magtraj.yaml)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

// initConfig saves the layered config, so a preset or MAGTRAJ_* variables
// in effect are captured in the file.
func initConfig(cmd *cobra.Command, args []string) error {
	path := "magtraj.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if !forceInit {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	st := styles()
	fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s\n", st.OK.Render("Config saved."), path)
	return nil
}
