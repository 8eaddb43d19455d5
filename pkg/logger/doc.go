// Package logger provides a context-aware wrapper around log/slog with
// functional options, attribute helpers, log-injection sanitizing and a small
// console facade for print style logging.
//
// New builds a *slog.Logger from Option values:
//
//   - WithEnvironment / WithMode / WithFormat select text or JSON output.
//   - WithLevel sets the minimum level.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context,
//     for example the request id.
//   - WithSanitizer wraps the handler in SanitizingHandler so messages and
//     attribute values cannot forge log lines or carry terminal escapes.
//
// # Architecture
//
// The handler chain is ContextHandler, which runs the registered
// ContextExtractor callbacks, then SanitizingHandler when enabled, then the
// concrete slog text or JSON handler.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "customerdesk"),
//	    logger.WithSanitizer(),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.ErrorContext(ctx, "create customer failed", logger.Error(err))
//
// Error and Errors render errors as {"name":...,"message":...} and return an
// empty attribute for nil, so no nil check is needed at the call site.
//
// # Console
//
// Console mirrors the familiar log/info/warn/error calls. Its Mode is passed
// to NewConsole and never changes afterwards:
//
//	console := logger.NewConsole(os.Stdout, logger.ModeFor(env))
//	console.Error("upstream failed:", err)
package logger
