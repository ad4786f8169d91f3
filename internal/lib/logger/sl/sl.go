package sl

import (
	"log/slog"
)

// Err creates a slog.Attr with the given error.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Op creates a slog.Attr naming the operation that emits a record.
func Op(opn string) slog.Attr {
	return slog.String("op", opn)
}
