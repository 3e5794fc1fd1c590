// Package logcall wraps functions so every call is logged.
//
//	add := logcall.Logged(log, func(ctx context.Context, p Pair) (int, error) {
//		return p.X + p.Y, nil
//	})
//
// Wrapping logs "adding logging" once. Each call then logs "calling" with the
// function name before delegating. LogFormat replaces the per-call message
// with a text/template rendered over FuncInfo:
//
//	deco, err := logcall.LogFormat[Pair, int](log, "{{.File}}:{{.Name}}")
//	add = deco(add)
package logcall
