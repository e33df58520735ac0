package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var hashObjectWrite bool

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object <file>",
	Short: "Compute object ID and optionally create a blob from a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashObject,
}

func init() {
	hashObjectCmd.Flags().BoolVarP(&hashObjectWrite, "write", "w", false, "write the object into the object database")
	rootCmd.AddCommand(hashObjectCmd)
}

func runHashObject(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	id, err := repo.HashObject(cmd.Context(), data, hashObjectWrite)
	if err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}
