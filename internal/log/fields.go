package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldSource     = "source"
	FieldRows       = "rows"
	FieldRegion     = "region"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldSnapshotID = "snapshot_id"
	FieldTotalSales = "total_sales"
	FieldSheet      = "sheet"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLoader  = "loader"
	ComponentSheets  = "sheets"
	ComponentDemo    = "demo"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentCache   = "cache"
)

// Operations defines standard operation names
const (
	OpAcquire  = "acquire"
	OpFallback = "fallback"
	OpFilter   = "filter"
	OpExport   = "export"
	OpSnapshot = "snapshot"
	OpPublish  = "publish"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
