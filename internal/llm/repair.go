package llm

import (
	"strings"

	"github.com/joseph-ayodele/payroll-register/internal/entity"
)

// RepairTruncated makes a best-effort recovery of a response that was cut
// off by the output-token budget. It only fires when truncated is true: a
// malformed-but-complete response is unrecoverable and returns nil.
//
// The heuristic assumes the common failure shape for this payload: the cut
// happens mid-way through the employees array of objects. It is not a
// general parser and must stay that narrow.
func RepairTruncated(raw string, truncated bool) (*entity.PagePayload, bool) {
	if !truncated {
		return nil, false
	}
	fixed := balanceTruncatedJSON(raw)
	payload, err := DecodePagePayload([]byte(fixed))
	if err != nil {
		return nil, false
	}
	return payload, true
}

// balanceTruncatedJSON closes the structure of a cut-off JSON document:
// count the unmatched opening braces and brackets over the whole text, drop
// trailing lines that do not terminate in a comma, closing brace or closing
// bracket (the in-progress line the cut landed on), strip trailing commas,
// then append the missing closers, brackets before braces.
func balanceTruncatedJSON(raw string) string {
	openBraces := strings.Count(raw, "{") - strings.Count(raw, "}")
	openBrackets := strings.Count(raw, "[") - strings.Count(raw, "]")

	lines := strings.Split(raw, "\n")
	for len(lines) > 0 && !endsComplete(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	fixed := strings.Join(lines, "\n")

	fixed = strings.TrimRight(strings.TrimSpace(fixed), ",")

	var b strings.Builder
	b.WriteString(fixed)
	for i := 0; i < openBrackets; i++ {
		b.WriteString("\n]")
	}
	for i := 0; i < openBraces; i++ {
		b.WriteString("\n}")
	}
	return b.String()
}

func endsComplete(line string) bool {
	s := strings.TrimSpace(line)
	return strings.HasSuffix(s, ",") || strings.HasSuffix(s, "}") || strings.HasSuffix(s, "]")
}
