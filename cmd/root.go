package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/session"
)

var cfgFile string

// log is shared by every subcommand once the config is read.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "roboscene",
	Short: "Build, check and play Colobot level files",
	Long: `roboscene reads Colobot level files, builds the scene they describe and
evaluates their end of mission conditions. Games can be saved and restored.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command. Panics and command errors are reported to
// Sentry when a DSN is configured.
func Execute() {
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(err)
			hub.Flush(5 * time.Second)
			panic(err)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./roboscene.yaml or $HOME/.config/roboscene/roboscene.yaml)")
	flags.String("data_dir", ".", "directory holding the levels/ tree")
	flags.String("save_dir", "savegame", "directory holding player profiles and save slots")
	flags.String("profile", "player", "player profile name")
	flags.String("language", "E", "language letter of translated level lines")
	flags.String("log_level", "info", "log level (debug, info, warn, error)")
	flags.String("sentry_dsn", "", "report crashes to this Sentry DSN")

	for _, name := range []string{"data_dir", "save_dir", "profile", "language", "log_level", "sentry_dsn"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("roboscene")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "roboscene"))
		}
	}

	viper.SetEnvPrefix("ROBOSCENE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup configures logging and crash reporting from the merged config.
func setup() error {
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Out = os.Stderr

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	if dsn := viper.GetString("sentry_dsn"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Release: Version}); err != nil {
			return fmt.Errorf("failed to initialize sentry: %w", err)
		}
	}
	return nil
}

// openSession creates a session from the config. progress and journal may
// be nil.
func openSession(progress engine.ProgressReporter, journal *session.Journal) (*session.Session, error) {
	return session.New(session.Options{
		DataDir:  viper.GetString("data_dir"),
		SaveDir:  viper.GetString("save_dir"),
		Player:   viper.GetString("profile"),
		Language: viper.GetString("language"),
		Log:      log,
		Progress: progress,
		Journal:  journal,
	})
}
