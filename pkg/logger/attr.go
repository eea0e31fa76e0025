package logger

import (
	"log/slog"
	"time"
)

// Error returns an "error" attribute, or an empty one for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

// Tool names the tool handling a call.
func Tool(name string) slog.Attr {
	return slog.String("tool", name)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}
