package main

import (
	"github.com/aretw0/ipcli/internal/cli"
	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Manage recorded scripts",
	Long:  `List, show, import and remove scripts kept in the configured script store.`,
}

var scriptLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all stored scripts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScripts(cmd, func(m *cli.ScriptManager) error {
			return m.List(cmd.Context())
		})
	},
}

var scriptShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScripts(cmd, func(m *cli.ScriptManager) error {
			return m.Show(cmd.Context(), args[0])
		})
	},
}

var scriptSaveCmd = &cobra.Command{
	Use:   "save <name> <file>",
	Short: "Import a script file into the store",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScripts(cmd, func(m *cli.ScriptManager) error {
			return m.Save(cmd.Context(), args[0], args[1])
		})
	},
}

var scriptRmCmd = &cobra.Command{
	Use:   "rm <name>...",
	Short: "Remove one or more stored scripts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withScripts(cmd, func(m *cli.ScriptManager) error {
			var firstErr error
			for _, name := range args {
				if err := m.Remove(cmd.Context(), name); err != nil {
					cmd.PrintErrln(err)
					if firstErr == nil {
						firstErr = err
					}
				}
			}
			return firstErr
		})
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptLsCmd)
	scriptCmd.AddCommand(scriptShowCmd)
	scriptCmd.AddCommand(scriptSaveCmd)
	scriptCmd.AddCommand(scriptRmCmd)
}

func withScripts(cmd *cobra.Command, fn func(*cli.ScriptManager) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	debug, _ := cmd.Flags().GetBool("debug")
	m, err := cli.NewScriptManager(cfg.Store, cmd.OutOrStdout(), debug)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}
