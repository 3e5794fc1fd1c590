package logcall

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"runtime"
	"strings"
	"text/template"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// Func is the shape of every function logcall can wrap.
type Func[T, U any] func(ctx context.Context, in T) (U, error)

// Decorator turns a Func into a logged Func.
type Decorator[T, U any] func(Func[T, U]) Func[T, U]

// FuncInfo identifies a function for log messages and templates.
type FuncInfo struct {
	Name    string
	Package string
	File    string
	Line    int
}

// Describe looks up fn in the runtime symbol table.
// It returns the zero FuncInfo when fn is not a non-nil function.
func Describe(fn any) FuncInfo {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return FuncInfo{}
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return FuncInfo{}
	}

	info := FuncInfo{Name: rf.Name()}
	info.File, info.Line = rf.FileLine(rf.Entry())

	// github.com/org/repo/pkg.Func.func1 -> package github.com/org/repo/pkg, name Func.func1
	slash := strings.LastIndex(info.Name, "/")
	if dot := strings.Index(info.Name[slash+1:], "."); dot >= 0 {
		info.Package = info.Name[:slash+1+dot]
		info.Name = info.Name[slash+1+dot+1:]
	}
	return info
}

// Logged wraps fn so each call logs "calling" at info level.
func Logged[T, U any](log *slog.Logger, fn Func[T, U]) Func[T, U] {
	info := Describe(fn)
	log.Info("adding logging", slog.String("func", info.Name))

	return func(ctx context.Context, in T) (U, error) {
		log.InfoContext(ctx, "calling", slog.String("func", info.Name))
		return fn(ctx, in)
	}
}

// LogFormat returns a decorator whose per-call message is format rendered
// with the wrapped function's FuncInfo.
func LogFormat[T, U any](log *slog.Logger, format string) (Decorator[T, U], error) {
	tmpl, err := template.New("logcall").Option("missingkey=error").Parse(format)
	if err != nil {
		return nil, errors.Join(ErrInvalidFormat, err)
	}
	if err := tmpl.Execute(&strings.Builder{}, FuncInfo{}); err != nil {
		return nil, errors.Join(ErrInvalidFormat, err)
	}

	return func(fn Func[T, U]) Func[T, U] {
		info := Describe(fn)
		log.Info("adding logging", slog.String("func", info.Name))

		var msg strings.Builder
		if err := tmpl.Execute(&msg, info); err != nil {
			log.Warn("rendering log format", slog.String("func", info.Name), logger.Error(err))
			msg.Reset()
			msg.WriteString("calling")
		}
		text := msg.String()

		return func(ctx context.Context, in T) (U, error) {
			log.InfoContext(ctx, text)
			return fn(ctx, in)
		}
	}, nil
}
