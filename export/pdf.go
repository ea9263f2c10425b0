package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// WritePDF menulis dokumen PDF: judul, ringkasan filter, lalu tabel.
// Font bawaan fpdf bukan unicode; teks dilewatkan translator cp1252 sehingga
// em-dash dan huruf beraksen aman, emoji memang tidak dibawa ke PDF.
func WritePDF(w io.Writer, f Filter, rows []Row) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Rekap Survei Kepuasan Masyarakat"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(f.Summary()), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{12, 40, 38, 100}
	lineHeight := 5.0

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range Headers {
			pdf.CellFormat(widths[i], 6, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	writeHeader()

	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()

	for _, r := range rows {
		cells := []string{
			fmt.Sprintf("%d", r.Index),
			r.Timestamp,
			r.Rating,
		}

		// tinggi baris mengikuti sel saran yang bisa lebih dari satu baris;
		// baris hasil SplitText ini juga yang digambar supaya tinggi border
		// keempat sel selalu sama
		lines := pdf.SplitText(tr(r.Suggestion), widths[3]-2)
		height := lineHeight * float64(len(lines))
		if height < lineHeight {
			height = lineHeight
		}

		if pdf.GetY()+height > pageH-bottom {
			pdf.AddPage()
			writeHeader()
		}

		x, y := pdf.GetXY()
		for i := 0; i < 3; i++ {
			pdf.CellFormat(widths[i], height, tr(cells[i]), "1", 0, "L", false, 0, "")
		}
		sx := pdf.GetX()
		pdf.Rect(sx, y, widths[3], height, "D")
		for j, line := range lines {
			pdf.SetXY(sx+1, y+float64(j)*lineHeight)
			pdf.CellFormat(widths[3]-2, lineHeight, line, "", 0, "L", false, 0, "")
		}
		pdf.SetXY(x, y+height)
	}

	return pdf.Output(w)
}
