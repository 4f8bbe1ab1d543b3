// Package commands implements the CLI commands for the roll tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/roll/internal/dice"
	"github.com/cory-johannsen/roll/internal/histogram"
)

// Version is the build version, overridden at link time.
var Version = "dev"

// CLI represents the command line interface for roll.
type CLI struct {
	roller  *dice.Roller
	rootCmd *cobra.Command
}

// New creates a new CLI instance that rolls with roller.
//
// Precondition: roller must be non-nil.
func New(roller *dice.Roller) *CLI {
	c := &CLI{roller: roller}

	rootCmd := &cobra.Command{
		Use:   "roll <spec>...",
		Short: "Roll dice given in NdS notation with an optional +M or -M modifier",
		Long: "roll parses dice specifications such as 2d6+3, rolls them with a\n" +
			"uniform random source, and can report the exact probability\n" +
			"distribution of every achievable total.",
		Example:       "  roll 2d6+3\n  roll --histogram 3d8-2 1d20",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE:          c.run,
	}
	rootCmd.Flags().BoolP("histogram", "d", false,
		"also print the exact outcome distribution for each spec")

	c.rootCmd = rootCmd
	return c
}

// run processes each spec fully in the order given: parse, roll, print, and
// optionally render the distribution. The first parse failure halts all
// processing after it.
func (c *CLI) run(cmd *cobra.Command, args []string) error {
	withHistogram, _ := cmd.Flags().GetBool("histogram")
	out := cmd.OutOrStdout()

	for _, arg := range args {
		spec, err := dice.Parse(arg)
		if err != nil {
			return err
		}

		result := c.roller.Roll(spec)
		if _, err := fmt.Fprintln(out, result.String()); err != nil {
			return err
		}

		if withHistogram {
			if err := histogram.Render(out, dice.Enumerate(spec)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
