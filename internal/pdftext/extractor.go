package pdftext

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
)

// ExtractPages linearizes each page of a PDF into plain text, in page
// order. Layout is not reconstructed; rows come back top-to-bottom with one
// line per text row, which is what the extraction prompt expects.
func ExtractPages(path string, logger *slog.Logger) ([]entity.Page, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("pdftext.close_error", "path", path, "error", cerr)
		}
	}()

	total := r.NumPage()
	pages := make([]entity.Page, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, entity.Page{PageNumber: i, Text: ""})
			continue
		}
		var b strings.Builder
		rows, err := p.GetTextByRow()
		if err != nil {
			logger.Warn("pdftext.page_error", "page", i, "error", err)
		}
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					b.WriteString(" ")
				}
				b.WriteString(word.S)
			}
			b.WriteString("\n")
		}
		pages = append(pages, entity.Page{PageNumber: i, Text: b.String()})
	}

	logger.Info("pdftext.extracted", "path", path, "pages", len(pages))
	return pages, nil
}

// BuildDocument wraps extracted pages into the persisted extracted.json
// shape.
func BuildDocument(sourceFile string, pages []entity.Page) entity.Document {
	return entity.Document{
		SourceFile:          sourceFile,
		ExtractionTimestamp: time.Now().UTC().Format(time.RFC3339),
		TotalPages:          len(pages),
		Pages:               pages,
	}
}
