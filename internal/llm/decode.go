package llm

import (
	"encoding/json"
	"fmt"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
)

// DecodePagePayload parses a generation response into a page payload,
// checking the structural schema before the typed unmarshal so that a
// garbled-but-parseable response is rejected rather than half-adopted.
func DecodePagePayload(raw []byte) (*entity.PagePayload, error) {
	if err := ValidateJSONAgainstSchema(BuildPagePayloadJSONSchema(), raw); err != nil {
		return nil, fmt.Errorf("page payload: %w", err)
	}
	var payload entity.PagePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode page payload: %w", err)
	}
	return &payload, nil
}
