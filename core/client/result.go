package client

import "encoding/json"

// Result is the uniform outcome of every API call. Exactly one of Data and
// Error carries meaningful content: Success is true iff Error is empty and
// Data reflects the server payload.
//
// Callers branch on Success instead of handling errors — no transport failure
// ever escapes a verb method as a Go error or panic.
type Result struct {
	Success bool `json:"success"`

	// Status is the HTTP status of the exchange. Successful responses are
	// normalized to 200 regardless of the exact 2xx code; transport failures
	// that never produced a response carry StatusTransportError.
	Status int `json:"status"`

	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Decode unmarshals the result payload into v.
// Returns ErrNoData for failed results or empty payloads.
func (r Result) Decode(v any) error {
	if !r.Success || len(r.Data) == 0 {
		return ErrNoData
	}
	return json.Unmarshal(r.Data, v)
}

// Decode unmarshals the result payload into a value of type T.
// Returns the zero value together with ErrNoData for failed results.
func Decode[T any](r Result) (T, error) {
	var v T
	if err := r.Decode(&v); err != nil {
		return *new(T), err
	}
	return v, nil
}
