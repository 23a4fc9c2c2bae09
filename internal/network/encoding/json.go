package encoding

import (
	"encoding/json"
	"errors"
	"io"
)

var ErrDecodeJSON = errors.New("failed to decode JSON")

// maxBodySize caps how much of a response body will be read while decoding.
const maxBodySize = 8 << 20

// UnmarshalJSON decodes a single JSON document from reader into a new T.
func UnmarshalJSON[T any](reader io.Reader) (T, error) {
	var value T
	if err := json.NewDecoder(io.LimitReader(reader, maxBodySize)).Decode(&value); err != nil {
		return value, errors.Join(err, ErrDecodeJSON)
	}

	return value, nil
}
