package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.td.teradata.com/sandbox/elite-console/internal/config"
	"github.td.teradata.com/sandbox/elite-console/internal/log"
	"github.td.teradata.com/sandbox/elite-console/internal/services/console"
	"github.td.teradata.com/sandbox/elite-console/internal/services/display"
	"github.td.teradata.com/sandbox/elite-console/internal/services/interpreter"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay [file]",
		Short: "Play the boot sequence, submit each input line and print the transcript",
		Long: "Replay reads commands one per line from file, or stdin when file is\n" +
			"omitted or '-', waits for the boot sequence to finish and prints the\n" +
			"resulting console transcript. An 'exit' line ends the replay.",
		Args: cobra.MaximumNArgs(1),
		RunE: runReplay,
	}
}

func runReplay(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open replay input: %w", err)
		}
		defer f.Close()
		in = f
	}

	c := config.CLIConfig
	s := newSession(c)
	s.Open()
	defer s.Close()

	if err := waitReady(cmd.Context(), s); err != nil {
		return fmt.Errorf("boot sequence: %w", err)
	}
	n, err := submitAll(s, in)
	if err != nil {
		return fmt.Errorf("read replay input: %w", err)
	}
	log.Infof("Replayed %d line(s), session %v", n, s.State())

	s.Close()
	return display.WriteTranscript(cmd.OutOrStdout(), s.View(), chrome(c))
}

func waitReady(ctx context.Context, s *console.Session) error {
	for !s.InputEnabled() {
		if s.State() == console.Closed {
			return fmt.Errorf("session closed during boot")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Changes():
		}
	}
	return nil
}

// submitAll feeds lines to s until input ends or the session closes.
func submitAll(s *console.Session, in io.Reader) (int, error) {
	n := 0
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if s.State() == console.Closed {
			break
		}
		s.SubmitLine(sc.Text())
		n++
	}
	return n, sc.Err()
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands the console understands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _ := interpreter.ForLocale(config.CLIConfig.Console.Locale)
			for _, name := range v.Names() {
				r := v.Resolve(name)
				summary := strings.SplitN(r.Output, "\n", 2)[0]
				if r.Signal == interpreter.Clear {
					summary = "clears the transcript"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", name, summary); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
