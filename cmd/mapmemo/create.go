package main

import (
	"github.com/spf13/cobra"
)

func newCreateCmd(c *cli) *cobra.Command {
	var (
		title     string
		content   string
		latitude  float64
		longitude float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note at the given coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateCoordinates(latitude, longitude); err != nil {
				return err
			}

			note := c.store.CreateNewNote(cmd.Context(), title, content, latitude, longitude, c.now())

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), note)
			}
			return writeNote(cmd.OutOrStdout(), note)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&content, "content", "", "Note text")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "Latitude in degrees")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "Longitude in degrees")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
