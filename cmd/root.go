package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/octanesh/octane/core/config"
	"github.com/octanesh/octane/core/jobs"
	"github.com/octanesh/octane/core/logger"
	"github.com/octanesh/octane/core/prompt"
	"github.com/octanesh/octane/core/shell"
	"github.com/spf13/cobra"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
// Running octane with no subcommand starts the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "octane",
	Short: "A small interactive shell with background job tracking.",
	Long: `An interactive shell that expands environment variables, applies
full-line aliases, runs a fixed set of builtins and launches anything
else as an external program, optionally in the background.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		appLog, closeLog, err := logger.New(cfg)
		if err != nil {
			return err
		}
		defer closeLog.Close()

		sh, err := shell.New(shell.Options{
			Config: cfg,
			Jobs:   jobs.NewTable(),
			Prompt: prompt.NewRenderer(cfg),
			Log:    appLog,
		})
		if err != nil {
			return err
		}

		return sh.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
