package internal

const (
	AppName = "file-organizer"

	// 配置文件名（不含扩展名）
	ConfigName = "config"

	// 环境变量前缀，如 FILE_ORGANIZER_LOGGING_VERBOSE
	EnvPrefix = "FILE_ORGANIZER"

	// 默认日志文件
	DefaultLogFile = "file_organizer.log"
)
