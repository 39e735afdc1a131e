package logger

// Log level names accepted by Config.Level
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const LogFormatJSON = "json"

// Identity defaults
const (
	DefaultServiceName = "grim-armory"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// Log attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// Session log files
const (
	SessionFileTimestampFormat = "2006-01-02_15-04-05"
	SessionFileNamePattern     = "session_%s.log"
	SessionFileExtension       = ".log"
	SessionFileRetentionCount  = 9
	SessionDirPermission       = 0o755
	SessionFilePermission      = 0o644
)
