package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, ok := c.store.GetNote(cmd.Context(), args[0])
			if !ok {
				return notFound(args[0])
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), note)
			}
			return writeNote(cmd.OutOrStdout(), note)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, ok := c.store.GetNote(ctx, args[0]); !ok {
				return notFound(args[0])
			}
			c.store.DeleteNote(ctx, args[0])

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", args[0])
			return err
		},
	}
}
