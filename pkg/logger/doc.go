// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration and helper attribute constructors.
//
// New builds a *slog.Logger. Options select the format (text or json), the
// minimum level, static attributes and context extractors. The resulting
// handler is wrapped in ContextHandler, which appends attributes stored in the
// context with WithContext and those produced by registered extractors.
//
// # Usage
//
//	log := logger.New(logger.WithEnvironment("development", "fieldkit"))
//	ctx := logger.WithContext(context.Background(), logger.RunID(uuid.NewString()))
//	log.InfoContext(ctx, "loaded rides", logger.File(path), logger.Count(len(rows)))
//
// Helper constructors such as Error, Type, Field and Route keep attribute keys
// consistent across packages. Error and Errors return an empty Attr for nil
// errors, so they can be passed unconditionally.
//
// Output defaults to stderr so command output on stdout stays clean.
package logger
