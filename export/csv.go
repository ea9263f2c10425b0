package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV menulis baris dokumen sebagai CSV dengan baris header.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			fmt.Sprintf("%d", r.Index),
			r.Timestamp,
			r.Rating,
			r.Suggestion,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
