package consts

// GinContextKey gin context key
const GinContextKey = "gin-context"

// TraceHeader carries the request trace id
const TraceHeader = "X-Trace-Id"
