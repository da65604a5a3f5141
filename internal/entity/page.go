package entity

// Page is one linearized page of a payroll document, as produced by the
// text-extraction step. Pages are immutable and ordered by PageNumber.
type Page struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// Document is the persisted output of the text-extraction step
// (extracted.json).
type Document struct {
	SourceFile          string `json:"source_file"`
	ExtractionTimestamp string `json:"extraction_timestamp"`
	TotalPages          int    `json:"total_pages"`
	Pages               []Page `json:"pages"`
}
