package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aretw0/ipcli/internal/cli"
	"github.com/aretw0/ipcli/internal/config"
	"github.com/aretw0/ipcli/pkg/command"
	"github.com/spf13/cobra"
)

const bootUsage = "ipcli [w: number] [h: number] [color: {t | f}]"

var errBootArgs = errors.New("invalid options")

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [w: number] [h: number] [color: {t | f}]",
	Short: "Start an interactive editing session",
	Long: `Starts the editor on a w x h canvas filled with color (10 x 10, off by default).
A script can be replayed before the prompt appears, and the session can be recorded on exit.`,
	Args: validateBootArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applyBootArgs(&cfg, args); err != nil {
			return err
		}

		if v, _ := cmd.Flags().GetString("listen"); v != "" {
			cfg.Listen = v
		}
		if v, _ := cmd.Flags().GetBool("no-frame"); v {
			cfg.Frame = false
		}

		opts := cli.RunOptions{Config: cfg}
		opts.ScriptPath, _ = cmd.Flags().GetString("script")
		opts.Load, _ = cmd.Flags().GetString("load")
		opts.Record, _ = cmd.Flags().GetString("record")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Debug, _ = cmd.Flags().GetBool("debug")

		return cli.Execute(opts)
	},
}

func validateBootArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 3 {
		return bootError()
	}
	return nil
}

// applyBootArgs overrides the canvas settings with "w h color".
func applyBootArgs(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return nil
	}
	w, errW := strconv.ParseInt(args[0], 10, 32)
	h, errH := strconv.ParseInt(args[1], 10, 32)
	color, errC := command.ParseColor(args[2])
	if errW != nil || errH != nil || errC != nil {
		return bootError()
	}
	cfg.Width, cfg.Height, cfg.Color = int(w), int(h), color
	return nil
}

// bootError reads like the in-session usage errors, prefixed with the program name.
func bootError() error {
	return fmt.Errorf("%s: %w\nusage: %s", rootCmd.Name(), errBootArgs, bootUsage)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("script", "", "Replay a script file before the prompt")
	cmd.Flags().String("load", "", "Replay a stored script before the prompt")
	cmd.Flags().String("record", "", "Save the session under this name on exit")
	cmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	cmd.Flags().String("listen", "", "Serve the read-only HTTP view on this address")
	cmd.Flags().Bool("no-frame", false, "Draw the canvas without a frame")
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)

	// 'run' is the default when no command is given.
	addRunFlags(rootCmd)
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
}
