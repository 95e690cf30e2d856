// Package ctxutil provides helpers for request-scoped values carried in a
// context.Context.
//
// # Trace IDs
//
// Every CLI invocation gets a trace id that the logger attaches to each
// entry:
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	logger.Infof(ctx, "signed %s", name) // trace_id=<traceID>
//
// # Commands
//
//	ctx = ctxutil.SetCommand(ctx, "sign")
//	name := ctxutil.GetCommand(ctx)
package ctxutil
