package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rit "github.com/AshhKetchup/Rit"
)

var catFilePretty bool

var catFileCmd = &cobra.Command{
	Use:   "cat-file <object>",
	Short: "Provide content or type of repository objects",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatFile,
}

func init() {
	catFileCmd.Flags().BoolVarP(&catFilePretty, "pretty-print", "p", false, "pretty-print the contents of the object")
	rootCmd.AddCommand(catFileCmd)
}

func runCatFile(cmd *cobra.Command, args []string) error {
	id, err := rit.ParseObjectID(args[0])
	if err != nil {
		return err
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	kind, payload, err := repo.ReadObject(cmd.Context(), id)
	if err != nil {
		return err
	}

	if catFilePretty {
		if kind == rit.KindTree {
			return printTree(cmd.Context(), repo, id, false)
		}
		_, err := os.Stdout.Write(payload)
		return err
	}

	fmt.Printf("%s %d\n", kind, len(payload))
	if kind == rit.KindBlob {
		os.Stdout.Write(payload)
		fmt.Println()
	}
	return nil
}
