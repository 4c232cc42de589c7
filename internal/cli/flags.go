package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

func OptionalBoolFlag(cmd *cobra.Command, name string) (bool, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

// overrideString replaces *dst with the flag value when the flag was given.
func overrideString(cmd *cobra.Command, name string, dst *string) error {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return nil
	}
	value, err := OptionalStringFlag(cmd, name)
	if err != nil {
		return err
	}
	*dst = value
	return nil
}

// overrideSlice replaces *dst with the flag values when the flag was given.
func overrideSlice(cmd *cobra.Command, name string, dst *[]string) error {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return nil
	}
	values, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	*dst = values
	return nil
}
