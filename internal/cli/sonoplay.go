package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/homeline/sonoctl/internal/tables"
)

var sonoplayCmd = &cobra.Command{
	Use:           "sonoplay [flags] <playlist>",
	Short:         "Start a named playlist on the target speakers",
	Long:          `sonoplay looks a playlist up in the playlist table and starts it on the target room or group preset. Playback, repeat and shuffle are set in that order.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	RunE:          runSonoplay,
}

func runSonoplay(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	if viper.GetBool("list-aliases") {
		return tables.WriteAliases(cmd.OutOrStdout(), a.aliases)
	}

	playlists, err := tables.LoadPlaylists(a.cfg.PlaylistFile)
	if err != nil {
		return err
	}
	if viper.GetBool("list") {
		return tables.WritePlaylists(cmd.OutOrStdout(), playlists)
	}

	if len(args) != 1 {
		return fmt.Errorf("playlist name required (use --list to see available playlists)")
	}

	playlist, err := tables.LookupPlaylist(playlists, args[0])
	if err != nil {
		return fmt.Errorf("%w (use --list to see available playlists)", err)
	}

	repeat := viper.GetString("repeat")
	if repeat != "all" && repeat != "none" {
		return fmt.Errorf("--repeat takes 'all' or 'none' (got %q)", repeat)
	}

	t := a.target()
	if t.IsPreset() {
		// Prime the group, then address the coordinator.
		a.client.FormGroup(t.Name)
	}
	a.client.PlayPlaylist(a.room(t), playlist.URI, repeat, viper.GetBool("shuffle"))

	desc := playlist.Description
	if desc == "" {
		desc = playlist.Name
	}
	fmt.Printf("Playing %s on %s. Done!\n", desc, a.room(t))
	return nil
}

func init() {
	sonoplayCmd.Flags().String("config", "", "settings file (default ~/.config/sonoctl/config.json)")
	sonoplayCmd.Flags().StringP("target", "t", "", "room or alias to address (default from settings)")
	sonoplayCmd.Flags().BoolP("shuffle", "s", false, "turn shuffle on")
	sonoplayCmd.Flags().StringP("repeat", "r", "all", "repeat mode: all or none")
	sonoplayCmd.Flags().BoolP("list", "l", false, "list the playlist table and exit")
	sonoplayCmd.Flags().Bool("list-aliases", false, "list the alias table and exit")
	sonoplayCmd.Flags().BoolP("debug", "v", false, "debug logging")
}

// ExecuteSonoplay runs the sonoplay command. It is called by
// cmd/sonoplay/main.go and only needs to happen once per process.
func ExecuteSonoplay() {
	if err := viper.BindPFlags(sonoplayCmd.Flags()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	bindEnv()
	if err := sonoplayCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
