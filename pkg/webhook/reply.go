package webhook

import (
	"encoding/json"
	"strconv"
)

// ReceivedText is shown when the webhook acknowledges with an empty body.
const ReceivedText = "✅ Message received successfully!"

// replyFields are checked in order; the first truthy value wins.
var replyFields = []string{"message", "response", "reply", "text"}

// ExtractReply turns a 2xx response body into the text shown to the visitor.
//
// A JSON object yields its first reply field that is not "", 0, false or null,
// falling back to the raw body. Any other valid JSON yields the raw body. A
// body that is not JSON is shown as-is, or as ReceivedText when empty.
func ExtractReply(body string) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &obj); err != nil || obj == nil {
		if body == "" {
			return ReceivedText
		}
		return body
	}
	for _, field := range replyFields {
		if s, ok := replyText(obj[field]); ok {
			return s
		}
	}
	return body
}

// replyText renders a truthy JSON value as text. Objects and arrays keep their JSON.
func replyText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case bool:
		return "true", t
	case float64:
		if t == 0 {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return string(raw), true
	}
}
