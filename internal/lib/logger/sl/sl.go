package sl

import (
	"log/slog"
)

func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

func Segment(index int, text string) slog.Attr {
	return slog.Group("segment",
		slog.Int("index", index),
		slog.String("text", text),
	)
}
