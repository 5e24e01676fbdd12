package export

import (
	"fmt"
	"strings"
	"time"

	"faepa_workflow/internal/domain/snapshot"
	"faepa_workflow/internal/usecase"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Pagamentos"

const dateLayout = "02/01/2006 15:04"

var fixedColumns = []string{"ID", "Prestador", "Valor"}
var trailingColumns = []string{"Encaminhado em", "Pago", "Pago em", "Observação", "Comprovante"}

// BatchWorkbook lays out a forwarded batch with one row per request and one
// column per payout field found in any entry.
func BatchWorkbook(detail usecase.BatchDetail) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, err
	}

	payoutLabels := collectPayoutLabels(detail)
	headers := make([]string, 0, len(fixedColumns)+len(payoutLabels)+len(trailingColumns))
	headers = append(headers, fixedColumns...)
	headers = append(headers, payoutLabels...)
	headers = append(headers, trailingColumns...)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)
	f.SetColWidth(sheetName, "A", lastCol, 22)

	for i, e := range detail.Entries {
		r := e.Record
		row := []any{r.ID, providerName(e), snapshot.FormatCurrency(r.ProviderValue)}
		for _, label := range payoutLabels {
			v, _ := e.Snapshots.Payout.Get(label)
			row = append(row, v)
		}
		row = append(row,
			formatDate(r.FaepaForwardedAt),
			yesNo(r.FaepaPaid),
			formatDate(r.FaepaPaidAt),
			r.FaepaPaymentNote,
			attachmentLink(e),
		)

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// FileName is the attachment name used when the workbook is downloaded.
func FileName(detail usecase.BatchDetail) string {
	return fmt.Sprintf("lote_%s.xlsx", strings.ReplaceAll(detail.BatchID, "/", "_"))
}

func collectPayoutLabels(detail usecase.BatchDetail) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range detail.Entries {
		for _, field := range e.Snapshots.Payout {
			if !seen[field.Label] {
				seen[field.Label] = true
				out = append(out, field.Label)
			}
		}
	}
	return out
}

func providerName(e usecase.RequestDetail) string {
	if e.Record.ProviderName != "" {
		return e.Record.ProviderName
	}
	v, _ := e.Snapshots.Payment.Get(snapshot.LabelProviderName)
	return v
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func attachmentLink(e usecase.RequestDetail) string {
	if e.AttachmentURL != "" {
		return e.AttachmentURL
	}
	return e.Record.FaepaPaymentAttachment
}
