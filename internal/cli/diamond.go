package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lattice/special"
)

func (a *app) diamondCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diamond",
		Short: "Describe the two-atom diamond cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alat := a.v.GetFloat64("alat")
			a.logger.Debug("building diamond", "alat", alat)
			g, err := special.Diamond(alat)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			renderSuperCell(w, g.SuperCell())
			fmt.Fprintln(w, LabelStyle.Render("atoms"))
			atoms := g.Atoms()
			for i, v := range g.XYZ() {
				fmt.Fprintf(w, "  %-2s %s\n", atoms[i].Symbol, formatVec(v))
			}

			return nil
		},
	}
	cmd.Flags().Float64("alat", special.DefaultDiamondAlat, "lattice constant in Ångström")

	return cmd
}
