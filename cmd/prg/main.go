// Command prg computes the Partial Relative Gain array of a gain
// matrix loaded from CSV. The header row of the CSV names the process
// inputs; each following row is one output's steady-state gains.
//
// Usage: prg <gain.csv> [outCL] [inCL]
//
// outCL and inCL are comma-separated 0-based index lists naming the
// output/input pairs assumed under perfect control ("-" or omitted
// means none, which yields the classical RGA). With -o the result is
// also written to a CSV file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"prg-analysis/prga"
)

func main() {
	outPath := flag.String("o", "", "write the PRG array to this CSV file")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: prg [-o result.csv] <gain.csv> [outCL] [inCL]")
		os.Exit(2)
	}

	// 1. Load the gain matrix from CSV
	gm, err := prga.LoadCSVGainMatrix(args[0])
	if err != nil {
		panic(err)
	}

	n := gm.Dim()
	fmt.Println("Loaded", n, "x", n, "gain matrix with inputs:", strings.Join(gm.Inputs, ", "))
	fmt.Printf("%v\n", mat.Formatted(gm.G, mat.Prefix(" ")))

	// 2. Parse the closed-loop index sets
	var outCL, inCL []int
	if len(args) > 1 {
		outCL, err = parseIndexList(args[1])
		if err != nil {
			panic(fmt.Errorf("outCL: %w", err))
		}
	}
	if len(args) > 2 {
		inCL, err = parseIndexList(args[2])
		if err != nil {
			panic(fmt.Errorf("inCL: %w", err))
		}
	}

	if len(outCL) == 0 {
		fmt.Println("No closed loops: computing the classical RGA")
	} else {
		fmt.Println("Closed loops (output,input):", pairs(outCL, inCL))
	}

	// 3. Compute the PRG array
	prg, err := prga.PRG(gm.G, outCL, inCL)
	if err != nil {
		panic(err)
	}

	// 4. Print with open output/input labels
	openOut := prga.OpenIndices(n, outCL)
	openIn := prga.OpenIndices(n, inCL)
	prga.PrintPRG(os.Stdout, prg, pick(gm.Outputs, openOut), pick(gm.Inputs, openIn))

	// 5. Optionally write the result to CSV
	if *outPath != "" {
		if err := prga.WritePRGToCSV(*outPath, prg, pick(gm.Outputs, openOut), pick(gm.Inputs, openIn)); err != nil {
			panic(err)
		}
		fmt.Println("PRG array written to", *outPath)
	}
}

// parseIndexList parses a comma-separated list of 0-based indices.
// "-" and "" mean an empty list.
func parseIndexList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	idx := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad index %q: %w", p, err)
		}
		idx[i] = v
	}
	return idx, nil
}

// pick selects names[i] for each index i.
func pick(names []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		if v < len(names) {
			out[i] = names[v]
		} else {
			out[i] = strconv.Itoa(v)
		}
	}
	return out
}

// pairs renders the closed-loop pairing for logging.
func pairs(outCL, inCL []int) string {
	var b strings.Builder
	for i := range outCL {
		if i > 0 {
			b.WriteString(" ")
		}
		in := -1
		if i < len(inCL) {
			in = inCL[i]
		}
		fmt.Fprintf(&b, "(%d,%d)", outCL[i], in)
	}
	return b.String()
}
