package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login <user>",
	Short: "Start a session",
	Long: `Login records a session for the given user in the configuration
directory. Record mutations require an active session; list, pick, and
export do not.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		s, err := session.Start(configDir, args[0])
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session started for %s\n", s.User)
		return nil
	},
}
