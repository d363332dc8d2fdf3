package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// GenerateOverBytesUnderRunes returns a string whose rune count is always below its byte length.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 bytes, 1 rune
	return strings.Repeat(symbol, count)
}

// DecodeBody reads the response body as JSON into v.
func DecodeBody(res *http.Response, v any) error {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err //nolint:wrapcheck
	}
	return json.Unmarshal(body, v) //nolint:wrapcheck
}
