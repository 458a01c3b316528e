package utils

import (
	"encoding/json"
)

// NormalizeList converts a legacy API response body into a canonical
// record list. The legacy endpoints disagreed on their envelope: some
// returned a bare array, some {"data": [...]}, some
// {"status": ..., "data": [...]}. All three shapes normalize here, and
// anything else resolves to an empty list so callers never branch on
// shape themselves.
func NormalizeList(body []byte) []Record {
	if len(body) == 0 {
		return []Record{}
	}

	// Bare array
	var list []Record
	if err := json.Unmarshal(body, &list); err == nil {
		if list == nil {
			return []Record{}
		}
		return list
	}

	// Object envelope with a data property
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		LogError("Unrecognized legacy response shape, defaulting to empty list")
		return []Record{}
	}
	data, ok := envelope["data"]
	if !ok {
		LogError("Legacy response envelope has no data property, defaulting to empty list")
		return []Record{}
	}
	if err := json.Unmarshal(data, &list); err != nil || list == nil {
		return []Record{}
	}
	return list
}
