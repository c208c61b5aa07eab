package utils

import "github.com/goccy/go-json"

// ExtractErrorDetail returns the string "detail" of an error body. Anything
// else, including a "message" field, yields "" so callers show their own
// fallback.
func ExtractErrorDetail(body []byte) string {
	var fields struct {
		Detail interface{} `json:"detail"`
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	detail, _ := fields.Detail.(string)
	return detail
}
