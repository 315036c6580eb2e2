package render

import (
	"encoding/csv"
	"io"

	"github.com/litescript/skyq/internal/query"
)

func writeCSV(w io.Writer, res query.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{dateTitle}, titles(res)...)); err != nil {
		return err
	}
	for _, row := range res.Rows {
		if err := cw.Write(append([]string{row.At.String()}, cells(res, row)...)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
