package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	rit "github.com/AshhKetchup/Rit"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new, empty repository",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := repoDir()
	if err := rit.Init(dir); err != nil {
		return err
	}

	fmt.Printf("Initialized empty rit repository in %s\n", filepath.Join(dir, rit.MetaDir))
	return nil
}
