package encode

import "errors"

var (
	ErrEncoding    = errors.New("encode error")
	ErrUnsupported = errors.New("unsupported value")
)
