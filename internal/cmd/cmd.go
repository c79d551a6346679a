package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.td.teradata.com/sandbox/elite-console/internal/config"
	"github.td.teradata.com/sandbox/elite-console/internal/log"
	"github.td.teradata.com/sandbox/elite-console/internal/services/boot"
	"github.td.teradata.com/sandbox/elite-console/internal/services/console"
	"github.td.teradata.com/sandbox/elite-console/internal/services/display"
	"github.td.teradata.com/sandbox/elite-console/internal/services/interpreter"
)

var (
	cfgFile      string
	tickInterval time.Duration
	locale       string
	logFile      io.Closer
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "elite",
		Short:         "elite is a scripted hacker console for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfigE(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeLog()
		},
		RunE: runInteractive,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file for elite")
	root.PersistentFlags().DurationVarP(&tickInterval, "tick", "t", 0, "boot sequence tick interval (e.g. 250ms)")
	root.PersistentFlags().StringVarP(&locale, "locale", "l", "", "console language: en or ru")

	root.AddCommand(newReplayCmd(), newCommandsCmd())
	return root
}

// Execute runs the command tree
func Execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

func initConfigE(cmd *cobra.Command) error {
	if err := config.NewConfig(cfgFile); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	c := config.CLIConfig
	if cmd.Flags().Changed("tick") {
		c.Console.TickInterval = tickInterval
	}
	if cmd.Flags().Changed("locale") {
		c.Console.Locale = locale
	}
	if _, ok := interpreter.ForLocale(c.Console.Locale); !ok {
		return fmt.Errorf("unsupported locale %q", c.Console.Locale)
	}
	if c.Console.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.Console.TickInterval)
	}
	return setupLog(c.Log, cmd.ErrOrStderr(), cmd == cmd.Root())
}

// setupLog points the logger at log.file. Without a file the interactive
// console discards logs since the screen belongs to the renderer.
func setupLog(c *config.Log, stderr io.Writer, interactive bool) error {
	out := stderr
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	} else if interactive {
		out = io.Discard
	}
	if err := log.Setup(log.NewLogConfigurator(c.Level, out)); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	return nil
}

func closeLog() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func newSession(c *config.Config) *console.Session {
	script, _ := boot.ForLocale(c.Console.Locale)
	vocabulary, _ := interpreter.ForLocale(c.Console.Locale)
	return console.New(console.Options{
		Script:       script,
		Vocabulary:   vocabulary,
		TickInterval: c.Console.TickInterval,
	})
}

func chrome(c *config.Config) display.Chrome {
	return display.ChromeFor(c.Console.Locale, c.Console.Title, c.Console.Prompt)
}
