package instance

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

// formatCost prints integral costs without a fractional part ("12"), and
// anything else in the shortest round-tripping form ("2.5").
func formatCost(c float64) string {
	if c == math.Trunc(c) && math.Abs(c) < 1<<53 {
		return strconv.FormatInt(int64(c), 10)
	}

	return strconv.FormatFloat(c, 'g', -1, 64)
}

// WriteSolution writes the two-line solution report:
//
//	<cost> <optimal 0|1>
//	<a_0> <a_1> ... <a_{n-1}>
//
// A nil assignment means no cover was found; it is rejected with ErrNoSolution
// so that "nothing found" is never printed as a cover of cost 0.
//
// Complexity: O(len(assignment)).
func WriteSolution(w io.Writer, cost float64, optimal bool, assignment []int) error {
	if assignment == nil {
		return ErrNoSolution
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(formatCost(cost))
	if optimal {
		bw.WriteString(" 1\n")
	} else {
		bw.WriteString(" 0\n")
	}
	for k, a := range assignment {
		if k > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(a))
	}
	bw.WriteByte('\n')

	return bw.Flush()
}
