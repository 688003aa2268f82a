// Package cli implements the supercell command line: describe a periodic
// cell, look up supercell image indices and build reference structures.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. SUPERCELL_NSC=3,3,1.
const envPrefix = "SUPERCELL"

// app carries per-invocation state shared by subcommands.
type app struct {
	v      *viper.Viper
	logger *log.Logger
}

// NewRootCmd builds the command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v: viper.New(),
		logger: log.NewWithOptions(errOut, log.Options{
			Prefix: "supercell",
		}),
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "supercell",
		Short: "Inspect periodic unit cells and their supercell images",
		Long: TitleStyle.Render("supercell") + `

Builds a periodic cell from 1, 3, 6 or 9 numbers and prints its volume,
reciprocal vectors and periodic image offsets.

  supercell describe --cell 3,4,5,90,90,120 --nsc 3,3,1
  supercell index --cell 2 --nsc 3,3,3 --offset 1,0,-1
  supercell diamond --alat 3.57`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}
			if a.v.GetBool("verbose") {
				a.logger.SetLevel(log.DebugLevel)
			}

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(a.describeCmd())
	root.AddCommand(a.indexCmd())
	root.AddCommand(a.diamondCmd())

	return root
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	root := NewRootCmd(out, errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, ErrorStyle.Render("Error: ")+err.Error())

		return 1
	}

	return 0
}
