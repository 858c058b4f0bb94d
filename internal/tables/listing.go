package tables

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteAliases prints the alias table in aligned columns.
func WriteAliases(w io.Writer, aliases []Alias) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ALIAS\tTARGET")
	for _, a := range aliases {
		target := a.Target.Name
		if a.Target.IsPreset() {
			target = target + " (preset)"
		}
		fmt.Fprintf(tw, "%s\t%s\n", a.Name, target)
	}
	return tw.Flush()
}

// WritePlaylists prints the playlist table in aligned columns.
func WritePlaylists(w io.Writer, playlists []Playlist) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYLIST\tURI\tDESCRIPTION")
	for _, p := range playlists {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.URI, p.Description)
	}
	return tw.Flush()
}
