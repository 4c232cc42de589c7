package fileutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeJSONL renders records one JSON object per line, the layout of the
// categories, power sets and powers tables in the jsonl output format.
// Display help carries game markup such as <color>, so HTML is not escaped.
func EncodeJSONL[T any](records []T) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	for i, record := range records {
		if err := encoder.Encode(record); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}
