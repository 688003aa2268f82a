package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lattice/cell"
)

const (
	defaultCell = "1"
	defaultNsc  = "1,1,1"
)

func addCellFlags(cmd *cobra.Command) {
	cmd.Flags().String("cell", defaultCell, "cell as 1, 3, 6 (a,b,c,alpha,beta,gamma) or 9 numbers")
	cmd.Flags().String("nsc", defaultNsc, "number of supercells along each lattice vector")
}

func (a *app) superCell() (*cell.SuperCell, error) {
	spec, nsc := a.v.GetString("cell"), a.v.GetString("nsc")
	a.logger.Debug("building cell", "cell", spec, "nsc", nsc)

	return buildSuperCell(spec, nsc)
}

func (a *app) describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print lattice vectors, volume, reciprocal cell and image offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := a.superCell()
			if err != nil {
				return err
			}
			renderSuperCell(cmd.OutOrStdout(), sc)

			return nil
		},
	}
	addCellFlags(cmd)

	return cmd
}

func (a *app) indexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Print the supercell index of an image offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := a.superCell()
			if err != nil {
				return err
			}
			off, err := parseTriple(a.v.GetString("offset"))
			if err != nil {
				return err
			}
			i, err := sc.ScIndex(cell.Offset(off))
			if err != nil {
				return err
			}
			a.logger.Debug("found image", "offset", off, "index", i)
			v := sc.Offset(cell.Offset(off))
			fmt.Fprintf(cmd.OutOrStdout(), "%s%d\n", LabelStyle.Render("index"), i)
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", LabelStyle.Render("offset"), formatVec(v))

			return nil
		},
	}
	addCellFlags(cmd)
	cmd.Flags().String("offset", "0,0,0", "image offset as three integers")

	return cmd
}

func renderSuperCell(w io.Writer, sc *cell.SuperCell) {
	fmt.Fprintln(w, TitleStyle.Render(sc.String()))
	fmt.Fprintln(w, LabelStyle.Render("cell"))
	for _, v := range sc.Cell() {
		fmt.Fprintln(w, "  "+formatVec(v))
	}
	fmt.Fprintf(w, "%s%.6f\n", LabelStyle.Render("volume"), sc.Vol())
	fmt.Fprintf(w, "%s%t\n", LabelStyle.Render("orthogonal"), sc.IsOrthogonal())
	fmt.Fprintln(w, LabelStyle.Render("rcell"))
	for _, v := range sc.RCell() {
		fmt.Fprintln(w, "  "+formatVec(v))
	}
	fmt.Fprintf(w, "%s%d\n", LabelStyle.Render("images"), sc.NS())
	for i, off := range sc.ScOff() {
		fmt.Fprintf(w, "  %3d  [%2d %2d %2d]\n", i, off[0], off[1], off[2])
	}
}

func formatVec(v r3.Vec) string {
	return fmt.Sprintf("[% .6f % .6f % .6f]", v.X, v.Y, v.Z)
}
