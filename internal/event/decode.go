package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload converts an event payload into T.
// In-process publishers hand over the struct itself (or a pointer to it); payloads that
// went through JSON arrive as maps and are re-decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case nil:
		return result, fmt.Errorf("decode %T: payload is nil", result)
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("decode %T: payload is nil", result)
		}
		return *v, nil
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("decode %T: %w", result, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode %T: %w", result, err)
	}
	return result, nil
}
