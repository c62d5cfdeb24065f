// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"syscall"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/httpcore/header"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(u *url.URL) slog.Value {
		if u == nil {
			return slog.StringValue("")
		}
		return slog.StringValue(u.Redacted())
	}),
	slogformatter.FormatByType(func(v header.Version) slog.Value {
		if v.IsZero() {
			return slog.StringValue("unspecified")
		}
		return slog.StringValue(v.String())
	}),
	slogformatter.FormatByType(func(q header.QValue) slog.Value {
		return slog.StringValue(q.String())
	}),
	slogformatter.FormatByType(func(errno syscall.Errno) slog.Value {
		return slog.GroupValue(
			slog.Uint64("code", uint64(errno)),
			slog.String("text", errno.Error()),
		)
	}),
)

// NewConsole returns a logger that writes human-readable lines to w.
func NewConsole(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a logger with verbose, colored output meant for development.
func NewDev(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a default logger.
var Def = NewConsole(os.Stdout, slog.LevelDebug)

// Dev is a developer logger.
var Dev = NewDev(os.Stdout, slog.LevelDebug)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
// With '%+v' messages print their whole head and errors print their stack trace.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T ~string | ~[]byte] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T ~string | ~[]byte](v T) slog.LogValuer { return stringValue[T]{v} }
