// Shared helpers for boletera CLI commands: store attachment, the render
// sink, the confirmation prompt, and the session presence check.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boletostravel/boletera/internal/session"
	"github.com/boletostravel/boletera/internal/sqlite"
	"github.com/boletostravel/boletera/pkg/types"
)

// validCollectionsStr is a comma-separated list of valid collection names
// for error output.
var validCollectionsStr = strings.Join(types.StandardCollections, ", ")

// attachStore resolves the data directory and returns the process-wide
// shared backend, attaching it on first use. Concurrent openers converge on
// the same handle. The caller must defer the returned release function.
func attachStore() (*sqlite.Backend, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	store, err := sqlite.Shared(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("attach store: %w", err)
	}
	return store, func() { _ = sqlite.CloseShared() }, nil
}

// collectionArg validates a collection-name argument.
func collectionArg(name string) (types.Schema, error) {
	schema, err := types.SchemaFor(name)
	if err != nil {
		return types.Schema{}, fmt.Errorf("unknown collection %q (valid: %s)", name, validCollectionsStr)
	}
	return schema, nil
}

// codeArg parses an integer record key argument.
func codeArg(arg string) (int, error) {
	code, err := strconv.Atoi(arg)
	if err != nil || code <= 0 {
		return 0, fmt.Errorf("invalid record code %q", arg)
	}
	return code, nil
}

// confirm asks a yes/no question on the command's input. The --yes flag
// answers affirmatively without prompting.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	if flagYes {
		return true, nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// requireSession refuses record mutations without an active session,
// mirroring the original application's per-page auth gate.
func requireSession() error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	current, err := session.Current(configDir)
	if err != nil {
		return err
	}
	if current == nil {
		return errors.New("no active session (run \"boletera login <user>\" first)")
	}
	return nil
}

// renderRecords is the render sink: it prints an ordered record view, or
// the empty-result indicator when nothing matched. With --json the view is
// emitted as a JSON array.
func renderRecords(cmd *cobra.Command, schema types.Schema, records []types.Record) error {
	if flagJSON {
		output, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
		return nil
	}
	for _, r := range records {
		fmt.Fprintln(cmd.OutOrStdout(), formatRecord(schema, r))
	}
	return nil
}

// formatRecord renders one record as a single line: key, status label, and
// the schema fields that carry display content.
func formatRecord(schema types.Schema, r types.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6d  [%s]", r.Key(), statusLabel(r.Status()))
	for _, f := range schema.Fields {
		if f.Name == schema.Key {
			continue
		}
		switch f.Kind {
		case types.FieldText, types.FieldDate, types.FieldAmount:
			if value, ok := r.Field(f.Name); ok && value != "" {
				fmt.Fprintf(&b, "  %s", value)
			}
		}
	}
	return b.String()
}

// statusLabel renders a status for list output.
func statusLabel(s types.Status) string {
	switch s {
	case types.StatusActive:
		return "Activo"
	case types.StatusInactive:
		return "Inactivo"
	default:
		return "Eliminado"
	}
}

// isNotFound reports whether err wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// exitCode classifies a command error: storage failures are system errors,
// everything else is a user error.
func exitCode(err error) int {
	if errors.Is(err, types.ErrStoreUnavailable) || errors.Is(err, types.ErrVersionConflict) {
		return exitSysError
	}
	return exitUserError
}
