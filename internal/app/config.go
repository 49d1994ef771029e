package app

import (
	"io"

	"go.uber.org/zap"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Out    io.Writer   // result lines, e.g. os.Stdout
	Logger *zap.Logger // optional; defaults to a no-op logger
}
