package tables

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAliases(t *testing.T) {
	path := writeTable(t, `# room aliases
kitchen|Kitchen
br | Master Bedroom

all|preset:whole_home
`)

	aliases, err := LoadAliases(path)
	require.NoError(t, err)
	require.Len(t, aliases, 3)

	assert.Equal(t, Alias{Name: "kitchen", Target: Target{Kind: RoomTarget, Name: "Kitchen"}}, aliases[0])
	assert.Equal(t, Alias{Name: "br", Target: Target{Kind: RoomTarget, Name: "Master Bedroom"}}, aliases[1])
	assert.Equal(t, Alias{Name: "all", Target: Target{Kind: PresetTarget, Name: "whole_home"}}, aliases[2])
}

func TestLoadAliasesMissingFile(t *testing.T) {
	aliases, err := LoadAliases(filepath.Join(t.TempDir(), "nonexistent"))
	require.NoError(t, err)
	assert.Empty(t, aliases)
}

func TestLoadAliasesSkipsMalformedRows(t *testing.T) {
	path := writeTable(t, `kitchen|Kitchen
not-a-row
|Missing Alias
office|Office
`)

	aliases, err := LoadAliases(path)
	require.NoError(t, err)
	require.Len(t, aliases, 2)
	assert.Equal(t, "kitchen", aliases[0].Name)
	assert.Equal(t, "office", aliases[1].Name)
}

func TestResolve(t *testing.T) {
	aliases := []Alias{
		{Name: "kitchen", Target: Target{Kind: RoomTarget, Name: "Kitchen"}},
		{Name: "all", Target: Target{Kind: PresetTarget, Name: "whole_home"}},
		// Duplicate alias: the first entry must win.
		{Name: "kitchen", Target: Target{Kind: RoomTarget, Name: "Wrong Kitchen"}},
	}

	tests := []struct {
		name string
		in   string
		want Target
	}{
		{"mapped room", "kitchen", Target{Kind: RoomTarget, Name: "Kitchen"}},
		{"mapped preset", "all", Target{Kind: PresetTarget, Name: "whole_home"}},
		{"unmapped passes through", "Garage", Target{Kind: RoomTarget, Name: "Garage"}},
		{"empty passes through", "", Target{Kind: RoomTarget, Name: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(aliases, tt.in))
		})
	}
}

func TestLoadPlaylists(t *testing.T) {
	path := writeTable(t, `# playlists
jazz|favorite/Morning Jazz|Relaxed morning jazz
radio|tunein/play/s12345
`)

	playlists, err := LoadPlaylists(path)
	require.NoError(t, err)
	require.Len(t, playlists, 2)

	assert.Equal(t, Playlist{Name: "jazz", URI: "favorite/Morning Jazz", Description: "Relaxed morning jazz"}, playlists[0])
	assert.Equal(t, Playlist{Name: "radio", URI: "tunein/play/s12345", Description: ""}, playlists[1])
}

func TestLookupPlaylist(t *testing.T) {
	playlists := []Playlist{
		{Name: "jazz", URI: "favorite/Morning Jazz", Description: "Morning jazz"},
	}

	got, err := LookupPlaylist(playlists, "jazz")
	require.NoError(t, err)
	assert.Equal(t, "favorite/Morning Jazz", got.URI)
	assert.Equal(t, "Morning jazz", got.Description)

	_, err = LookupPlaylist(playlists, "metal")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPlaylist)
	assert.Contains(t, err.Error(), "metal")
}

func TestWriteAliases(t *testing.T) {
	aliases := []Alias{
		{Name: "kitchen", Target: Target{Kind: RoomTarget, Name: "Kitchen"}},
		{Name: "all", Target: Target{Kind: PresetTarget, Name: "whole_home"}},
	}

	var sb strings.Builder
	require.NoError(t, WriteAliases(&sb, aliases))

	out := sb.String()
	assert.Contains(t, out, "ALIAS")
	assert.Contains(t, out, "kitchen")
	assert.Contains(t, out, "whole_home (preset)")
}

func TestWritePlaylists(t *testing.T) {
	playlists := []Playlist{
		{Name: "jazz", URI: "favorite/Morning Jazz", Description: "Morning jazz"},
	}

	var sb strings.Builder
	require.NoError(t, WritePlaylists(&sb, playlists))

	out := sb.String()
	assert.Contains(t, out, "PLAYLIST")
	assert.Contains(t, out, "jazz")
	assert.Contains(t, out, "favorite/Morning Jazz")
	assert.Contains(t, out, "Morning jazz")
}

func TestWritePlaylistsEmptyDescription(t *testing.T) {
	playlists := []Playlist{
		{Name: "radio", URI: "tunein/play/s12345"},
	}

	var sb strings.Builder
	require.NoError(t, WritePlaylists(&sb, playlists))

	// With no description the URI still identifies what will play.
	assert.Contains(t, sb.String(), "tunein/play/s12345")
}
