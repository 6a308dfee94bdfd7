// Package ctxutil carries request-scoped values, currently the trace ID,
// through context.Context and gin.Context.
//
//	ctx, traceID := ctxutil.EnsureTraceID(r.Context())
//	r = r.WithContext(ctx)
//
// When a *gin.Context is embedded with WithGinContext, values are mirrored
// into it so gin handlers can read them with c.Get.
package ctxutil
