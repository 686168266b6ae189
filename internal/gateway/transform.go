package gateway

import (
	"encoding/json"
)

// Envelope is the gateway's uniform success response contract.
type Envelope struct {
	Success  bool   `json:"success"`
	Code     int64  `json:"code"`
	Data     any    `json:"data,omitempty"`
	DebugURL any    `json:"debug_url,omitempty"`
	Message  string `json:"message"`
	Usage    any    `json:"usage,omitempty"`
}

// FailureEnvelope is returned when the upstream body cannot be transformed.
// It is still a 200 response; transformation degrades, it does not fail.
type FailureEnvelope struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	OriginalResponse any    `json:"original_response"`
}

// Transform maps the raw upstream response into the uniform envelope. The
// caller always receives well-formed JSON: a body that is not an object
// becomes a FailureEnvelope carrying the original payload.
func Transform(raw any) any {
	body, ok := raw.(map[string]any)
	if !ok {
		return FailureEnvelope{
			Success:          false,
			Message:          "transform failed",
			OriginalResponse: raw,
		}
	}

	data := body["data"]
	if s, isString := data.(string); isString {
		// nested string payloads are often JSON themselves; keep the
		// original string when they are not
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			data = parsed
		}
	}

	var code int64
	if c, isNumber := body["code"].(float64); isNumber {
		code = int64(c)
	}

	message, _ := body["msg"].(string)
	if message == "" {
		message, _ = body["message"].(string)
	}

	return Envelope{
		Success:  true,
		Code:     code,
		Data:     data,
		DebugURL: body["debug_url"],
		Message:  message,
		Usage:    body["usage"],
	}
}
