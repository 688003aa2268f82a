package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lattice/cell"
)

// ErrBadList indicates a malformed comma-separated number list.
var ErrBadList = errors.New("cli: malformed number list")

// parseFloats splits "a,b,c" into float64 values.
func parseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrBadList)
		}
		out = append(out, x)
	}

	return out, nil
}

// parseTriple reads exactly three integers.
func parseTriple(s string) ([3]int, error) {
	var out [3]int
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 3 {
		return out, fmt.Errorf("%q: want 3 integers: %w", s, ErrBadList)
	}
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return out, fmt.Errorf("%q: %w", s, ErrBadList)
		}
		out[i] = n
	}

	return out, nil
}

// buildSuperCell turns the --cell and --nsc values into a SuperCell.
// Nine numbers are read as a row-major 3×3 matrix; anything else goes
// through cell.ToCell.
func buildSuperCell(cellSpec, nscSpec string) (*cell.SuperCell, error) {
	params, err := parseFloats(cellSpec)
	if err != nil {
		return nil, err
	}
	nsc, err := parseTriple(nscSpec)
	if err != nil {
		return nil, err
	}
	opt := cell.WithNsc(nsc[0], nsc[1], nsc[2])
	if len(params) == 9 {
		return cell.NewFromMatrix(mat.NewDense(3, 3, params), opt)
	}

	return cell.NewFromParams(params, opt)
}
