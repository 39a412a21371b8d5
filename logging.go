package localedata

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logger used by package localedata. It derives from the
// process global zerolog logger; replace it to redirect package output.
var Logger zerolog.Logger = log.With().Str("sys", "localedata").Logger()
