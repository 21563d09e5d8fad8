package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// defaultConfig is used when no config file exists yet.
const defaultConfig = `{
  "library": "replays.db",
  "serve": {
    "addr": ":8080"
  },
  "import": {
    "workers": 4
  }
}
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write the replay configuration file",
	Long: `Read and write values in the replay configuration file.

Keys use gjson path syntax:
  replay config get serve.addr
  replay config set import.workers 8`,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigFile returns the config file path, honoring --config.
func resolveConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", "replay.json"), nil
}

// readConfig returns the config file contents, or the defaults when the
// file does not exist.
func readConfig() string {
	path, err := resolveConfigFile()
	if err != nil {
		return defaultConfig
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig
	}
	return string(data)
}

// configValue reads one key from the config, falling back to the
// built-in defaults for keys the file does not set.
func configValue(key string) string {
	if v := gjson.Get(readConfig(), key); v.Exists() {
		return v.String()
	}
	return gjson.Get(defaultConfig, key).String()
}

// configInt is configValue for integer keys.
func configInt(key string) int {
	if v := gjson.Get(readConfig(), key); v.Exists() {
		return int(v.Int())
	}
	return int(gjson.Get(defaultConfig, key).Int())
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	v := gjson.Get(readConfig(), args[0])
	if !v.Exists() {
		v = gjson.Get(defaultConfig, args[0])
	}
	if !v.Exists() {
		return fmt.Errorf("unknown config key %q", args[0])
	}
	fmt.Println(v.String())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	// Integers stay integers in the file.
	var updated string
	if n, convErr := strconv.Atoi(value); convErr == nil {
		updated, err = sjson.Set(readConfig(), key, n)
	} else {
		updated, err = sjson.Set(readConfig(), key, value)
	}
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("%s = %s\n", key, value)
	return nil
}
