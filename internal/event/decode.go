package event

import "encoding/json"

// DecodePayload converts an event payload to T. Payloads published in-process
// are already T; payloads read back from JSON (dead letters, tests) arrive as
// maps and are re-marshalled.
func DecodePayload[T any](payload any) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
