package extract

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
	"github.com/joseph-ayodele/payroll-register/internal/llm"
)

// Coordinator drives pass 1: one generation call per page, parsed and
// aggregated into a single interim record. Pages are processed strictly in
// order; a page that fails (service error, unparseable response, repair
// that comes up empty, or simply no employees) is recorded in
// skipped_pages and the run continues. No page failure aborts the run.
type Coordinator struct {
	gen    llm.Generator
	logger *slog.Logger
}

func NewCoordinator(gen llm.Generator, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{gen: gen, logger: logger}
}

// Extract runs raw extraction over all pages and returns the aggregated
// interim record. Every input page is accounted for exactly once: it either
// contributes at least one employee or appears in SkippedPages. Report
// metadata is adopted from the first page that yields it and never
// overwritten; employees are appended in page order with no deduplication.
func (c *Coordinator) Extract(ctx context.Context, pages []entity.Page) entity.InterimRecord {
	interim := entity.InterimRecord{
		Employees:    make([]entity.RawEmployeeRecord, 0, len(pages)),
		SkippedPages: make([]int, 0),
	}

	for _, page := range pages {
		c.logger.Info("extract.page.start", "page", page.PageNumber, "text_len", len(page.Text))

		prompt := llm.BuildExtractorPrompt(page.PageNumber, page.Text)
		res, err := c.gen.Generate(ctx, prompt)
		if err != nil {
			c.logger.Error("extract.page.call_failed", "page", page.PageNumber, "error", err)
			interim.SkippedPages = append(interim.SkippedPages, page.PageNumber)
			continue
		}
		if res.Truncated {
			c.logger.Warn("extract.page.truncated", "page", page.PageNumber)
		}

		payload, perr := llm.DecodePagePayload([]byte(res.Text))
		if perr != nil {
			c.logger.Error("extract.page.parse_failed",
				"page", page.PageNumber, "error", perr,
				"response_preview", preview(res.Text, 200),
			)
			repaired, ok := llm.RepairTruncated(res.Text, res.Truncated)
			if ok && len(repaired.Employees) > 0 {
				c.adopt(&interim, repaired)
				c.logger.Info("extract.page.repaired",
					"page", page.PageNumber, "employees", len(repaired.Employees))
			} else {
				c.logger.Warn("extract.page.skipped", "page", page.PageNumber, "reason", "parse")
				interim.SkippedPages = append(interim.SkippedPages, page.PageNumber)
			}
			continue
		}

		// Metadata first-wins applies even when the page carries no
		// employees; only the employee count decides the skip.
		c.adopt(&interim, payload)
		if len(payload.Employees) == 0 {
			c.logger.Warn("extract.page.skipped", "page", page.PageNumber, "reason", "no_employees")
			interim.SkippedPages = append(interim.SkippedPages, page.PageNumber)
			continue
		}
		c.logger.Info("extract.page.ok", "page", page.PageNumber, "employees", len(payload.Employees))
	}

	if interim.ReportMetadata == nil {
		interim.ReportMetadata = &entity.RawReportMetadata{}
	}

	c.logger.Info("extract.done",
		"pages", len(pages),
		"employees", len(interim.Employees),
		"skipped_pages", interim.SkippedPages,
	)
	return interim
}

// adopt applies the first-wins metadata rule and appends the page's
// employees to the running sequence.
func (c *Coordinator) adopt(interim *entity.InterimRecord, payload *entity.PagePayload) {
	if interim.ReportMetadata == nil && payload.ReportMetadata != nil {
		interim.ReportMetadata = payload.ReportMetadata
	}
	interim.Employees = append(interim.Employees, payload.Employees...)
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
