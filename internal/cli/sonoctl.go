package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/homeline/sonoctl/internal/tables"
)

var sonoctlCmd = &cobra.Command{
	Use:           "sonoctl",
	Short:         "Control networked speakers through the local HTTP service",
	Long:          `sonoctl sends room commands (volume, playback, grouping, announcements) to the local speaker HTTP service. Short names are resolved through the alias table before dispatch.`,
	SilenceErrors: true,
}

var volumeCmd = &cobra.Command{
	Use:   "volume <level>",
	Short: "Set or adjust volume (absolute, or relative like +5/-5)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		t := a.target()
		a.client.RoomActionValue(a.room(t), "volume", args[0])
		confirm()
		return nil
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start playback on the target",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		t := a.target()
		if t.IsPreset() {
			// Let the group form before addressing the coordinator.
			a.client.FormGroup(t.Name)
		}
		a.client.RoomAction(a.room(t), "play")
		confirm()
		return nil
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback on the target (all speakers for a preset)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		t := a.target()
		if t.IsPreset() {
			a.client.PauseAll()
		} else {
			a.client.RoomAction(t.Name, "pause")
		}
		confirm()
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop playback on the target",
	Args:  cobra.NoArgs,
	RunE:  roomActionRunE("stop"),
}

var nextCmd = &cobra.Command{
	Use:     "next",
	Aliases: []string{"skip"},
	Short:   "Skip to the next track",
	Args:    cobra.NoArgs,
	RunE:    roomActionRunE("next"),
}

var previousCmd = &cobra.Command{
	Use:     "previous",
	Aliases: []string{"prev"},
	Short:   "Go back to the previous track",
	Args:    cobra.NoArgs,
	RunE:    roomActionRunE("previous"),
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle <on|off>",
	Short: "Turn shuffle on or off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "on" && args[0] != "off" {
			return fmt.Errorf("shuffle takes 'on' or 'off' (got %q)", args[0])
		}
		a, err := setup()
		if err != nil {
			return err
		}
		t := a.target()
		a.client.RoomActionValue(a.room(t), "shuffle", args[0])
		confirm()
		return nil
	},
}

var repeatCmd = &cobra.Command{
	Use:   "repeat <all|none>",
	Short: "Set the repeat mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "all" && args[0] != "none" {
			return fmt.Errorf("repeat takes 'all' or 'none' (got %q)", args[0])
		}
		a, err := setup()
		if err != nil {
			return err
		}
		t := a.target()
		a.client.RoomActionValue(a.room(t), "repeat", args[0])
		confirm()
		return nil
	},
}

var groupCmd = &cobra.Command{
	Use:   "group <preset>",
	Short: "Apply a named speaker group preset",
	Long:  `group resolves the name through the alias table and applies the matching preset. An unaliased name is used as a preset name directly. The --target flag has no effect on this command.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		name := args[0]
		if t := tables.Resolve(a.aliases, name); t.IsPreset() {
			name = t.Name
		}
		a.client.ApplyPreset(name)
		confirm()
		return nil
	},
}

var ungroupCmd = &cobra.Command{
	Use:   "ungroup",
	Short: "Remove the target room from its group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		t := a.target()
		a.client.RoomAction(a.room(t), "leave")
		confirm()
		return nil
	},
}

var sayCmd = &cobra.Command{
	Use:   "say <message>...",
	Short: "Announce a text message on the target (all speakers for a preset)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		message := strings.Join(args, " ")
		t := a.target()
		if t.IsPreset() {
			a.client.SayAll(message)
		} else {
			a.client.Say(t.Name, message)
		}
		confirm()
		return nil
	},
}

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List the alias table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		return tables.WriteAliases(cmd.OutOrStdout(), a.aliases)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sonoctl v%s\n", version)
	},
}

// roomActionRunE builds the run function for commands that map to a
// plain /{room}/{action} call.
func roomActionRunE(action string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		t := a.target()
		a.client.RoomAction(a.room(t), action)
		confirm()
		return nil
	}
}

// confirm prints the success line. By design it is printed on every
// dispatch attempt: the HTTP outcome is not observed.
func confirm() {
	fmt.Println("Done!")
}

func init() {
	sonoctlCmd.PersistentFlags().String("config", "", "settings file (default ~/.config/sonoctl/config.json)")
	sonoctlCmd.PersistentFlags().StringP("target", "t", "", "room or alias to address (default from settings)")
	sonoctlCmd.PersistentFlags().BoolP("debug", "v", false, "debug logging")

	sonoctlCmd.AddCommand(volumeCmd, playCmd, pauseCmd, stopCmd, nextCmd,
		previousCmd, shuffleCmd, repeatCmd, groupCmd, ungroupCmd, sayCmd,
		aliasesCmd, versionCmd)
}

// ExecuteSonoctl runs the sonoctl command tree. It is called by
// cmd/sonoctl/main.go and only needs to happen once per process.
func ExecuteSonoctl() {
	if err := viper.BindPFlags(sonoctlCmd.PersistentFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	bindEnv()
	if err := sonoctlCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
