package basis

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// String returns the table contents in a form suitable for logs and the CLI
func (tb *Table) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== LGR Basis Table (degree %d) ===\n", tb.degree))
	sb.WriteString(formatVector("nodes", tb.nodes))
	sb.WriteString(formatVector("weights", tb.weights))
	sb.WriteString(formatVector("legendre_roots", tb.legendreRoots))
	sb.WriteString(formatMatrix("D", tb.differentiation))
	return sb.String()
}

func formatVector(name string, v []float64) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s[%d] = {", name, len(v)))
	for i, val := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%.15e", val))
	}
	sb.WriteString("}\n")
	return sb.String()
}

func formatMatrix(name string, m mat.Matrix) string {
	rows, cols := m.Dims()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s[%d][%d] = {\n", name, rows, cols))
	for i := 0; i < rows; i++ {
		sb.WriteString("    {")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("% .15e", m.At(i, j)))
		}
		sb.WriteString("}")
		if i < rows-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
