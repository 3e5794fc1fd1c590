package logcall

import "errors"

// ErrInvalidFormat is returned by LogFormat when the template does not parse
// or refers to unknown FuncInfo fields.
var ErrInvalidFormat = errors.New("logcall: invalid format")
