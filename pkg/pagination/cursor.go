package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// DecodeCursor decodes a token produced by EncodeCursor. An empty token
// decodes to the zero value.
func DecodeCursor[T any](token string) (T, error) {
	var cursor T

	if len(token) == 0 {
		return cursor, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return cursor, fmt.Errorf("%w: base64 decode: %w", ErrInvalidCursor, err)
	}

	if err := json.Unmarshal(data, &cursor); err != nil {
		return cursor, fmt.Errorf("%w: json unmarshal: %w", ErrInvalidCursor, err)
	}

	return cursor, nil
}

func EncodeCursor[T any](cursor T) string {
	data, _ := json.Marshal(cursor)

	return base64.RawURLEncoding.EncodeToString(data)
}
