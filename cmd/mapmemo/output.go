package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"mapmemo/internal/notes/domain/entities"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeNote печатает одну заметку в виде "поле: значение".
func writeNote(w io.Writer, note entities.Note) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "id:\t%s\n", note.ID)
	fmt.Fprintf(tw, "title:\t%s\n", note.Title)
	fmt.Fprintf(tw, "content:\t%s\n", note.Content)
	fmt.Fprintf(tw, "latitude:\t%s\n", formatCoordinate(note.Latitude))
	fmt.Fprintf(tw, "longitude:\t%s\n", formatCoordinate(note.Longitude))
	fmt.Fprintf(tw, "date:\t%s\n", note.Date.Format(time.RFC3339))
	return tw.Flush()
}

// writeTable печатает заметки таблицей в порядке хранения.
func writeTable(w io.Writer, notes []entities.Note) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDATE\tLATITUDE\tLONGITUDE")
	for _, note := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			note.ID,
			note.Title,
			note.Date.Format(time.RFC3339),
			formatCoordinate(note.Latitude),
			formatCoordinate(note.Longitude))
	}
	return tw.Flush()
}

func writeNotes(w io.Writer, notes []entities.Note, asJSON bool) error {
	if asJSON {
		return writeJSON(w, notes)
	}
	return writeTable(w, notes)
}
