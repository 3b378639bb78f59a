package sanitizer

import "errors"

// ErrNoDocumentBuilder is returned when a call is configured with a nil
// document builder, leaving the sanitizer no way to parse its input.
var ErrNoDocumentBuilder = errors.New("sanitizer: no document builder configured")
