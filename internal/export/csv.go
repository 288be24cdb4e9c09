package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
)

var csvHeader = []string{"frame", "comparisons", "swaps", "description", "values", "states"}

// WriteCSV writes one row per frame. Values and states are space separated.
func WriteCSV(w io.Writer, t trace.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i, f := range t {
		values := make([]string, len(f.Array))
		states := make([]string, len(f.Array))
		for j, e := range f.Array {
			values[j] = strconv.Itoa(e.Value)
			states[j] = string(e.State)
		}
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(f.Comparisons),
			strconv.Itoa(f.Swaps),
			f.Description,
			strings.Join(values, " "),
			strings.Join(states, " "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
