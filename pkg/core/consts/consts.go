package consts

type ctxKey string

// TraceKey 请求上下文中保存链路ID的键
const TraceKey ctxKey = "traceId"

// LocalsTraceKey fiber Locals 中保存链路ID的键
const LocalsTraceKey = "traceId"
