package output

import (
	"fmt"
	"github.com/gostonefire/lensmap/internal/conf"
	"github.com/sugawarayuuta/sonnet"
	"io"
)

// Answer - One labeled answer of a puzzle
type Answer struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Result - All answers of one puzzle run
type Result struct {
	Puzzle  string   `json:"puzzle"`
	Answers []Answer `json:"answers"`
}

// Write - Writes the result to w.
//   - format is conf.OutputText for one "<label>: <value>" line per answer or conf.OutputJSON for a single JSON document
func Write(w io.Writer, format string, result Result) (err error) {
	switch format {
	case conf.OutputText:
		for _, a := range result.Answers {
			if _, err = fmt.Fprintf(w, "%s: %d\n", a.Label, a.Value); err != nil {
				return
			}
		}
	case conf.OutputJSON:
		var data []byte
		data, err = sonnet.Marshal(result)
		if err != nil {
			err = fmt.Errorf("error while encoding result: %w", err)
			return
		}
		_, err = fmt.Fprintln(w, string(data))
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}

	return
}
