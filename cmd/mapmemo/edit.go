package main

import (
	"github.com/spf13/cobra"
)

// Имена флагов команды edit.
const (
	flagTitle   = "title"
	flagContent = "content"
	flagLat     = "lat"
	flagLon     = "lon"
)

func newEditCmd(c *cli) *cobra.Command {
	var (
		title     string
		content   string
		latitude  float64
		longitude float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a note",
		Long: `Edit rewrites every field of the note. Fields whose flags are not given
keep their current value; the date is set to the current time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			note, ok := c.store.GetNote(ctx, args[0])
			if !ok {
				return notFound(args[0])
			}

			flags := cmd.Flags()
			if flags.Changed(flagTitle) {
				note.Title = title
			}
			if flags.Changed(flagContent) {
				note.Content = content
			}
			if flags.Changed(flagLat) {
				note.Latitude = latitude
			}
			if flags.Changed(flagLon) {
				note.Longitude = longitude
			}
			note.Date = c.now()

			if err := validateCoordinates(note.Latitude, note.Longitude); err != nil {
				return err
			}

			c.store.EditNote(ctx, note.ID, note.Title, note.Content, note.Latitude, note.Longitude, note.Date)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), note)
			}
			return writeNote(cmd.OutOrStdout(), note)
		},
	}

	cmd.Flags().StringVar(&title, flagTitle, "", "New title")
	cmd.Flags().StringVar(&content, flagContent, "", "New text")
	cmd.Flags().Float64Var(&latitude, flagLat, 0, "New latitude in degrees")
	cmd.Flags().Float64Var(&longitude, flagLon, 0, "New longitude in degrees")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}
