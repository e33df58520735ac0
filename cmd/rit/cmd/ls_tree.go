package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	rit "github.com/AshhKetchup/Rit"
)

var lsTreeNameOnly bool

var lsTreeCmd = &cobra.Command{
	Use:   "ls-tree <tree>",
	Short: "List the contents of a tree object",
	Args:  cobra.ExactArgs(1),
	RunE:  runLsTree,
}

func init() {
	lsTreeCmd.Flags().BoolVar(&lsTreeNameOnly, "name-only", false, "list only entry names")
	rootCmd.AddCommand(lsTreeCmd)
}

func runLsTree(cmd *cobra.Command, args []string) error {
	id, err := rit.ParseObjectID(args[0])
	if err != nil {
		return err
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	return printTree(cmd.Context(), repo, id, lsTreeNameOnly)
}

func printTree(ctx context.Context, repo *rit.Repository, id rit.ObjectID, nameOnly bool) error {
	if nameOnly {
		names, err := repo.TreeNames(ctx, id)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	entries, err := repo.ListTree(ctx, id)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Printf("%s %s %s\t%s\n", entry.Mode, entry.Kind(), entry.ID, entry.Name)
	}
	return nil
}
