package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var writeTreeCmd = &cobra.Command{
	Use:   "write-tree [dir]",
	Short: "Snapshot a directory into a tree object",
	Long:  "Recursively store a directory as blob and tree objects and print the root tree ID.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWriteTree,
}

func init() {
	rootCmd.AddCommand(writeTreeCmd)
}

func runWriteTree(cmd *cobra.Command, args []string) error {
	dir := repoDir()
	if len(args) > 0 {
		dir = args[0]
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	root, err := repo.WriteTree(cmd.Context(), dir)
	if err != nil {
		return fmt.Errorf("write-tree failed: %w", err)
	}

	fmt.Println(root)
	return nil
}
