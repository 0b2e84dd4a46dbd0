package logger

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"go.uber.org/zap/zapcore"
)

var accessLogger = newAccessLogger(os.Stdout, FormatConsole)

func newAccessLogger(out io.Writer, format string) zerolog.Logger {
	if format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Str("component", "http").Logger()
}

// accessLevel maps a zap level onto zerolog; levels above error keep error-level access lines.
func accessLevel(lvl zapcore.Level) zerolog.Level {
	switch {
	case lvl <= zapcore.DebugLevel:
		return zerolog.DebugLevel
	case lvl == zapcore.InfoLevel:
		return zerolog.InfoLevel
	case lvl == zapcore.WarnLevel:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func configureAccess(lvl zapcore.Level, format string) {
	accessLogger = newAccessLogger(os.Stdout, format).Level(accessLevel(lvl))
}

// AccessLog writes one line per request with its status and latency.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = accessLogger.Error()
		case status >= http.StatusBadRequest:
			event = accessLogger.Warn()
		default:
			event = accessLogger.Info()
		}

		event.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("latency", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("client_ip", r.RemoteAddr).
			Msg("request processed")
	})
}
