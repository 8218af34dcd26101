package contract

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger enables engine debug logging. The engine logs nothing by default.
func SetLogger(l zerolog.Logger) { logger = l }
