package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/boletostravel/boletera/pkg/types"
)

var flagInitForce bool

// configFile is the marshalled shape of config.yaml.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config directory and the record store",
	Long: `Init writes config.yaml into the configuration directory and attaches
the store once so the collection tables exist. Running init on an already
initialized directory is a no-op unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}

		path := filepath.Join(configDir, "config.yaml")
		if _, err := os.Stat(path); err != nil || flagInitForce {
			content := configFile{Backend: types.BackendSQLite, DataDir: flagDataDir}
			data, err := yaml.Marshal(content)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
		}

		_, release, err := attachStore()
		if err != nil {
			return err
		}
		defer release()

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized boletera in %s\n", configDir)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "overwrite an existing config.yaml")
}
