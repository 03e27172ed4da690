package htmldoc

import "errors"

// ErrMalformedNumericStyle signals a width, length or span value that could
// not be parsed. Callers drop the affected attribute.
var ErrMalformedNumericStyle = errors.New("htmldoc: malformed numeric style value")
