// Package cli provides portfolioctl, an operator tool working directly on the
// configured storage slot through the project store.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// StorageOpener opens the slots a command works on
type StorageOpener func(ctx context.Context) (*bootstrap.Storage, error)

// CLI holds the command-line interface state.
type CLI struct {
	rootCmd *cobra.Command
	open    StorageOpener

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	jsonOutput bool
	debug      bool
}

// New creates a CLI backed by the storage described by the environment.
func New() *CLI {
	return NewWithStorage(func(ctx context.Context) (*bootstrap.Storage, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		return bootstrap.OpenStorage(ctx, cfg)
	})
}

// NewWithStorage creates a CLI using open instead of the environment.
func NewWithStorage(open StorageOpener) *CLI {
	c := &CLI{
		open:   open,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	c.rootCmd = c.newRootCmd()
	return c
}

// SetIO redirects the CLI's standard streams.
func (c *CLI) SetIO(in io.Reader, out, errOut io.Writer) {
	c.in, c.out, c.errOut = in, out, errOut
	c.rootCmd.SetIn(in)
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// Execute runs the CLI with args and returns the process exit code.
func (c *CLI) Execute(args []string) int {
	c.rootCmd.SetArgs(args)
	if err := c.rootCmd.Execute(); err != nil {
		fmt.Fprintf(c.errOut, "portfolioctl: %v\n", err)
		return ExitFailure
	}
	return ExitSuccess
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolioctl",
		Short: "Manage the portfolio's stored projects",
		Long: `portfolioctl reads the project collection from the configured storage slot,
applies one operation through the project store and writes the result back.

Storage is selected with the same environment variables as the API server
(STORAGE_DRIVER, STORAGE_KEY, REDIS_ADDR, DB_HOST, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "machine-readable JSON output")
	cmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "verbose debug logs")

	cmd.AddCommand(c.newExportCmd())
	cmd.AddCommand(c.newImportCmd())
	cmd.AddCommand(c.newClearCmd())
	cmd.AddCommand(c.newStatsCmd())
	cmd.AddCommand(c.newSeedCmd())

	return cmd
}

// withApp opens storage, restores the store and runs fn against it.
func (c *CLI) withApp(ctx context.Context, fn func(app *bootstrap.App) error) error {
	logger := zap.NewNop()
	if c.debug {
		l, err := logging.New("development", "debug")
		if err != nil {
			return err
		}
		logger = l
	}

	st, err := c.open(ctx)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.Close()

	return fn(bootstrap.NewApp(ctx, st, logger, bootstrap.AppOptions{}))
}

func (c *CLI) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) printJSON(v interface{}) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
