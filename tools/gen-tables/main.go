// Command gen-tables emits the solver's four distance tables as Go source
// text: edgeDist and cornerDist (32x32) and, by default, pair0Dist (32x32)
// too. Pass --quad to emit quad01Dist (32x32x32x32) instead. The tables
// are already built in-process by internal/cube's package init; this tool
// just formats the live values as literal array declarations, the way the
// original source's table generator dumped its computed tables as byte
// arrays for static inclusion.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/behren-q/qturn/internal/cube"
)

func main() {
	quad := flag.Bool("quad", false, "emit quad01Dist instead of the single-cubie and pair tables")
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fmt.Fprintln(w, "package cube")
	fmt.Fprintln(w)

	if *quad {
		emitQuad01(w)
	} else {
		emitEdgeCorner(w)
		emitPair0(w)
	}
}

func emitEdgeCorner(w *bufio.Writer) {
	edge := cube.EdgeDist()
	corner := cube.CornerDist()
	writeTable2D(w, "generatedEdgeDist", edge)
	writeTable2D(w, "generatedCornerDist", corner)
}

func emitPair0(w *bufio.Writer) {
	pair0 := cube.Pair0Dist()
	writeTable2D(w, "generatedPair0Dist", pair0)
}

func emitQuad01(w *bufio.Writer) {
	quad01 := cube.Quad01Dist()
	n := cube.TableSize
	fmt.Fprintf(w, "var generatedQuad01Dist = [%d][%d][%d][%d]int8{\n", n, n, n, n)
	for e0 := 0; e0 < n; e0++ {
		fmt.Fprintf(w, "\t{ // e0=%d\n", e0)
		for e1 := 0; e1 < n; e1++ {
			fmt.Fprintf(w, "\t\t{ // e1=%d\n", e1)
			for c0 := 0; c0 < n; c0++ {
				fmt.Fprintf(w, "\t\t\t{")
				for c1 := 0; c1 < n; c1++ {
					fmt.Fprintf(w, "%d, ", quad01[e0][e1][c0][c1])
				}
				fmt.Fprintf(w, "},\n")
			}
			fmt.Fprintf(w, "\t\t},\n")
		}
		fmt.Fprintf(w, "\t},\n")
	}
	fmt.Fprintln(w, "}")
}

func writeTable2D(w *bufio.Writer, name string, t [32][32]int8) {
	fmt.Fprintf(w, "var %s = [32][32]int8{\n", name)
	for i := range t {
		fmt.Fprintf(w, "\t{")
		for j := range t[i] {
			fmt.Fprintf(w, "%d, ", t[i][j])
		}
		fmt.Fprintf(w, "},\n")
	}
	fmt.Fprintln(w, "}")
}
