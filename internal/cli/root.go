// Package cli implements the expoctl command tree.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sliitsesc/event-navigation-dashboard/exhibition"
	"github.com/sliitsesc/event-navigation-dashboard/session"
	"github.com/sliitsesc/event-navigation-dashboard/view"
)

var (
	cfgFile string
	jsonOut bool
	yamlOut bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "expoctl",
	Short: "Admin CLI for the event-navigation exhibition API",
	Long: `expoctl manages the zones and stalls of an exhibition.

Sign in once, then run zone and stall commands against the remote API:

  expoctl login --email admin@sliitsesc.org
  expoctl zone list
  expoctl zone create --name "Hall A" --color "#112233"
  expoctl stall list --zone 1
  expoctl image upload poster.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Every error funnels through
// printError so domain rejections always show their friendly copy.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.expoctl/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", exhibition.DefaultBaseURL, "API base URL")
	rootCmd.PersistentFlags().String("asset-host", exhibition.DefaultAssetHost, "image asset host URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&yamlOut, "yaml", false, "output YAML")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("asset_host", rootCmd.PersistentFlags().Lookup("asset-host"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(configDir())
	}

	viper.SetDefault("session_file", filepath.Join(configDir(), "session.json"))

	viper.SetEnvPrefix("EXPOCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".expoctl"
	}
	return filepath.Join(home, ".expoctl")
}

// getStore opens the persisted session, restoring any prior login.
func getStore() *session.Store {
	auth := exhibition.NewClient(nil, exhibition.WithBaseURL(viper.GetString("api_url")))
	return session.New(viper.GetString("session_file"), auth.Auth)
}

// getClient returns an API client whose bearer token follows the
// session store, plus the store itself.
func getClient() (*exhibition.Client, *session.Store) {
	store := getStore()
	client := exhibition.NewClient(store,
		exhibition.WithBaseURL(viper.GetString("api_url")),
		exhibition.WithAssetHost(viper.GetString("asset_host")),
	)
	slog.Debug("client configured", "api_url", client.BaseURL())
	return client, store
}

// requireSession gates protected commands on a stored login.
func requireSession(store *session.Store) error {
	if !view.NewGuard(store).Allow() {
		return fmt.Errorf("not signed in. Run 'expoctl login' first")
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(v)
}

// printStructured renders v as JSON or YAML when either output flag is
// set, reporting whether it rendered anything.
func printStructured(v interface{}) (bool, error) {
	switch {
	case jsonOut:
		return true, printJSON(v)
	case yamlOut:
		return true, printYAML(v)
	}
	return false, nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", exhibition.FriendlyMessage(err))
}

// confirm prints prompt and reads a y/N answer from stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
