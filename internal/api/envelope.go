package api

import "encoding/json"

// The backend's contract drifted between `{success, message, data}` and
// bare payloads. This file is the only place that knows about both
// shapes; everything above it sees the decoded value.

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decodeBody unmarshals a response body into out, unwrapping the
// success/data envelope when one is present.
func decodeBody(data []byte, out interface{}) error {
	var env envelope

	if err := json.Unmarshal(data, &env); err == nil {
		if env.Success != nil && !*env.Success {
			return &Error{Status: 400, Message: env.Message}
		}
		if len(env.Data) > 0 && string(env.Data) != "null" {
			return json.Unmarshal(env.Data, out)
		}
	}

	return json.Unmarshal(data, out)
}

// errorMessage extracts a human-readable message from an error body,
// falling back to the raw body when it is not JSON.
func errorMessage(data []byte) string {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
		return env.Message
	}

	var bare struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &bare); err == nil {
		if bare.Message != "" {
			return bare.Message
		}
		if bare.Error != "" {
			return bare.Error
		}
	}

	return string(data)
}
