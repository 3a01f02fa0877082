package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := confirm(cmd, "End the current session?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if err := session.End(configDir); err != nil {
			return fmt.Errorf("end session: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Session ended")
		return nil
	},
}
