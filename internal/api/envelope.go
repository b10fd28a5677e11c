package api

import "encoding/json"

// ListEnvelope is the normalized shape of every list response. The backend
// is inconsistent about where the records live ({"data": […]}, a bare
// array, a named field like "tasks", or a doubly-nested "data" object);
// decoding flattens all of those here so callers never inspect the raw
// body. A body that matches none of the shapes yields empty Items.
type ListEnvelope[T any] struct {
	Items []T
	Stats map[string]int
}

// namedListKeys are the record-array field names seen across endpoints,
// checked in priority order.
var namedListKeys = []string{
	"data", "items", "tasks", "articles", "tickets", "estimates",
	"proposals", "creditNotes", "invoices", "staffs", "goals",
	"templates", "customers", "payments",
}

// DecodeList normalizes a list response body into a ListEnvelope.
// Invalid JSON is the only error; a recognizable-but-unexpected shape
// degrades to an empty item list, matching how every list page treats a
// surprise payload.
func DecodeList[T any](body []byte) (ListEnvelope[T], error) {
	var env ListEnvelope[T]
	env.Items = []T{}

	// Bare array.
	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		env.Items = items
		return env, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return env, err
	}

	if raw, ok := obj["stats"]; ok {
		var stats map[string]int
		if err := json.Unmarshal(raw, &stats); err == nil {
			env.Stats = stats
		}
	}

	raw, ok := findListField(obj)
	if !ok {
		return env, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		// Array of an unexpected element shape: silent degrade.
		return env, nil
	}
	env.Items = items
	return env, nil
}

// findListField locates the record array inside a response object,
// descending one level when "data" is itself an object (the data.data
// shape).
func findListField(obj map[string]json.RawMessage) (json.RawMessage, bool) {
	for _, key := range namedListKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		if isArray(raw) {
			return raw, true
		}
		if key == "data" {
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(raw, &nested); err == nil {
				return findListField(nested)
			}
		}
	}
	// Fall back to the first array-valued field of any name.
	for _, raw := range obj {
		if isArray(raw) {
			return raw, true
		}
	}
	return nil, false
}

func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
