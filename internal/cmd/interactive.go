package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.td.teradata.com/sandbox/elite-console/internal/config"
	"github.td.teradata.com/sandbox/elite-console/internal/driver"
	"github.td.teradata.com/sandbox/elite-console/internal/log"
	"github.td.teradata.com/sandbox/elite-console/internal/services/display"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	c := config.CLIConfig
	t := display.New(os.Stdout, int(os.Stdout.Fd()), c.Terminal.Width, c.Terminal.Height)
	if !t.IsTTY() {
		return fmt.Errorf("interactive console needs a terminal, try 'elite replay'")
	}

	keys, err := driver.OpenKeyboard()
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer func() {
		if err := keys.Close(); err != nil {
			log.Errorf("Failed to restore terminal: %v", err)
		}
		fmt.Fprint(os.Stdout, display.Show+display.ClearScreen+"\u001b[1;1H")
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Starting console, locale %s, tick %v", c.Console.Locale, c.Console.TickInterval)
	d := driver.New(newSession(c), t, keys, chrome(c))
	if err := d.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
