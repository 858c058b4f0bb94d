package tables

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// presetPrefix marks an alias target as a group preset in the alias file.
// The prefix never leaves this package; callers see a tagged Target.
const presetPrefix = "preset:"

// ErrUnknownPlaylist is returned when a playlist name has no table entry.
var ErrUnknownPlaylist = errors.New("unknown playlist")

// TargetKind distinguishes a single room from a group preset.
type TargetKind int

const (
	RoomTarget TargetKind = iota
	PresetTarget
)

// Target is the result of alias resolution: either a room name the HTTP
// service can address directly, or the name of a group preset.
type Target struct {
	Kind TargetKind
	Name string
}

// IsPreset reports whether the target refers to a group preset.
func (t Target) IsPreset() bool {
	return t.Kind == PresetTarget
}

// Alias maps a short user-facing name to a room or preset.
type Alias struct {
	Name   string
	Target Target
}

// Playlist is one row of the playlist table.
type Playlist struct {
	Name        string
	URI         string
	Description string
}

// LoadAliases reads the alias table, preserving file order.
// A missing file is not an error: the tool still works with literal
// room names, so an empty table is returned.
func LoadAliases(path string) ([]Alias, error) {
	var aliases []Alias
	err := eachRow(path, 2, func(fields []string) {
		aliases = append(aliases, Alias{
			Name:   fields[0],
			Target: parseTarget(fields[1]),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read alias table: %w", err)
	}
	return aliases, nil
}

// LoadPlaylists reads the playlist table, preserving file order.
// The description column is optional.
func LoadPlaylists(path string) ([]Playlist, error) {
	var playlists []Playlist
	err := eachRow(path, 2, func(fields []string) {
		p := Playlist{Name: fields[0], URI: fields[1]}
		if len(fields) > 2 {
			p.Description = fields[2]
		}
		playlists = append(playlists, p)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist table: %w", err)
	}
	return playlists, nil
}

// Resolve maps a short name to its configured target. First match wins.
// Unmapped input passes through unchanged as a literal room name, so
// resolution never fails.
func Resolve(aliases []Alias, name string) Target {
	for _, a := range aliases {
		if a.Name == name {
			return a.Target
		}
	}
	return Target{Kind: RoomTarget, Name: name}
}

// LookupPlaylist finds a playlist by exact name. Unlike alias resolution
// there is no literal fallback: an unknown name is an error.
func LookupPlaylist(playlists []Playlist, name string) (Playlist, error) {
	for _, p := range playlists {
		if p.Name == name {
			return p, nil
		}
	}
	return Playlist{}, fmt.Errorf("%w: %q", ErrUnknownPlaylist, name)
}

func parseTarget(s string) Target {
	if name, ok := strings.CutPrefix(s, presetPrefix); ok {
		return Target{Kind: PresetTarget, Name: strings.TrimSpace(name)}
	}
	return Target{Kind: RoomTarget, Name: s}
}

// eachRow streams the non-comment, non-blank rows of a pipe-delimited
// table file. Rows with fewer than minFields are skipped with a warning
// so one typo does not take down the whole table.
func eachRow(path string, minFields int, fn func(fields []string)) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "|")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) < minFields || fields[0] == "" {
			log.Warnf("skipping malformed row %s:%d: %q", path, lineNo, line)
			continue
		}
		fn(fields)
	}
	return scanner.Err()
}
