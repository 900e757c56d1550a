package prga

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// LoadCSVGainMatrix loads a square gain matrix from a CSV file.
// The header row holds the input (column) names; every following row is
// one output's gains. The number of data rows must equal the number of
// columns. Outputs are named y1..yn.
func LoadCSVGainMatrix(path string) (*GainMatrix, error) {
	// 1. Open file
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	// 2. Make CSV reader
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	// 3. Read header row
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("empty header in %s", path)
	}
	n := len(header) // number of inputs

	var (
		data []float64 // flat data for mat.Dense
		row  int       // row counter
	)

	// 4. Read each data row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+2, err) // +2 for header + 1-based
		}

		// Skip completely empty lines
		if len(record) == 1 && record[0] == "" {
			continue
		}

		if len(record) != n {
			return nil, fmt.Errorf(
				"row %d: expected %d columns, got %d",
				row+2, n, len(record),
			)
		}

		for j, s := range record {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf(
					"parse float at row %d col %d (%q): %w",
					row+2, j+1, s, err,
				)
			}
			data = append(data, v)
		}
		row++
	}

	if row != n {
		return nil, fmt.Errorf("%s: gain matrix must be square, got %d rows for %d inputs", path, row, n)
	}

	// 5. Build GainMatrix with generated output names
	outputs := make([]string, n)
	for i := range outputs {
		outputs[i] = fmt.Sprintf("y%d", i+1)
	}

	return &GainMatrix{
		G:       mat.NewDense(n, n, data),
		Outputs: outputs,
		Inputs:  header,
	}, nil
}

// PrintPRG writes the PRG array as a labeled table: one column per open
// input, one row per open output.
func PrintPRG(w io.Writer, prg *mat.Dense, outputs, inputs []string) {
	rows, cols := prg.Dims()

	fmt.Fprintf(w, "\n=== Partial Relative Gain Array ===\n\n")

	// Print header
	fmt.Fprintf(w, "%-12s", "")
	for j := 0; j < cols; j++ {
		fmt.Fprintf(w, "%12s", label(inputs, j, "u"))
	}
	fmt.Fprintln(w)

	// Print rows
	for i := 0; i < rows; i++ {
		fmt.Fprintf(w, "%-12s", label(outputs, i, "y"))
		for j := 0; j < cols; j++ {
			fmt.Fprintf(w, "%12.6f", prg.At(i, j))
		}
		fmt.Fprintln(w)
	}
}

// WritePRGToCSV writes the PRG array to a CSV file.
// Columns: Output, then one column per open input.
func WritePRGToCSV(path string, prg *mat.Dense, outputs, inputs []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	rows, cols := prg.Dims()

	// Write header
	header := make([]string, cols+1)
	header[0] = "Output"
	for j := 0; j < cols; j++ {
		header[j+1] = label(inputs, j, "u")
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	// Write data rows
	for i := 0; i < rows; i++ {
		record := make([]string, cols+1)
		record[0] = label(outputs, i, "y")
		for j := 0; j < cols; j++ {
			record[j+1] = fmt.Sprintf("%f", prg.At(i, j))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// label returns names[i] when available, otherwise a generated
// fallback like y3 or u3.
func label(names []string, i int, prefix string) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s%d", prefix, i+1)
}
