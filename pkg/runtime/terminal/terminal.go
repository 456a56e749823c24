package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-report/pkg/runtime/terminal/commands"
	"github.com/de-tools/fleet-report/pkg/runtime/terminal/summary"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *summary.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: summary.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet-report",
		Short: "Declarative fleet documentation reports",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.reporter))
	cmd.AddCommand(commands.NewSectionsCmd())
	cmd.AddCommand(commands.NewDevicesCmd())
	cmd.AddCommand(commands.NewPreviewCmd())
	cmd.AddCommand(commands.NewValidateCmd())

	return cmd
}
