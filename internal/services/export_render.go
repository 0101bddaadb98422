package services

import (
	"fmt"
	"time"

	"trekhub/internal/domain"
	"trekhub/internal/domain/models"
	"trekhub/internal/utils"
)

const (
	productName      = "trek-hub-india"
	exportKind       = "bookings-export"
	guideReportKind  = "guide-report"
	exportFormatVer  = "2.0"
	contentTypeCSV   = "text/csv; charset=utf-8"
	contentTypeJSON  = "application/json; charset=utf-8"
	contentTypeExcel = "application/vnd.ms-excel"
	contentTypeText  = "text/plain; charset=utf-8"
)

// ExportFile is a rendered export ready to be sent as an attachment.
type ExportFile struct {
	Body        []byte
	Filename    string
	ContentType string
	Records     int
}

// ExportMeta describes the export run for the document headers.
type ExportMeta struct {
	ExportedAt   time.Time
	TotalQueried int
	Format       domain.ExportFormat
	Cohort       domain.Cohort
	Filters      map[string]string
}

// Render serializes records in the requested format. All renderers are
// pure and accept an empty record list.
func Render(format domain.ExportFormat, records []models.ExportRecord, summary Summary, meta ExportMeta) (ExportFile, error) {
	date := utils.FormatDate(meta.ExportedAt)
	switch format {
	case domain.FormatCSV:
		body, err := RenderCSV(records)
		if err != nil {
			return ExportFile{}, err
		}
		return ExportFile{Body: body, Filename: exportFilename(exportKind, date, "csv"), ContentType: contentTypeCSV, Records: len(records)}, nil
	case domain.FormatExcel:
		body, err := RenderCSV(records)
		if err != nil {
			return ExportFile{}, err
		}
		return ExportFile{Body: body, Filename: exportFilename(exportKind, date, "xls"), ContentType: contentTypeExcel, Records: len(records)}, nil
	case domain.FormatJSON:
		body, err := RenderJSON(records, summary, meta)
		if err != nil {
			return ExportFile{}, err
		}
		return ExportFile{Body: body, Filename: exportFilename(exportKind, date, "json"), ContentType: contentTypeJSON, Records: len(records)}, nil
	case domain.FormatPDF:
		body := RenderGuideReport(records, summary, meta)
		return ExportFile{Body: body, Filename: exportFilename(guideReportKind, date, "txt"), ContentType: contentTypeText, Records: len(records)}, nil
	}
	return ExportFile{}, domain.ValidationError{Field: "format", Msg: fmt.Sprintf("unsupported export format %q", format)}
}

func exportFilename(kind, date, ext string) string {
	return fmt.Sprintf("%s-%s-%s.%s", productName, kind, date, ext)
}
