package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodyBytes bounds the size of decoded JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// ErrMalformedBody is returned by DecodeJSON when the body is not a single
// JSON object of the expected shape.
var ErrMalformedBody = errors.New("malformed request body")

// DecodeJSON decodes the request body into v. Any decoding failure,
// including trailing data after the object, wraps ErrMalformedBody.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedBody)
	}
	return nil
}
