package logging

// Поддерживаемые форматы вывода логов.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Поддерживаемые уровни логирования.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Поддерживаемые типы вывода логов.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Значения по умолчанию для Config.
// Используются в ProvideLogger и getDefaultLoggingConfig.
const (
	DefaultLevel      = LevelWarn
	DefaultFormat     = FormatText
	DefaultOutput     = OutputStderr
	DefaultFilePath   = "jiractl.log"
	DefaultMaxSize    = 20 // MB
	DefaultMaxBackups = 3
	DefaultMaxAge     = 14 // days
	DefaultCompress   = true
)

// DefaultConfig возвращает Config со значениями по умолчанию.
func DefaultConfig() Config {
	return Config{
		Level:      DefaultLevel,
		Format:     DefaultFormat,
		Output:     DefaultOutput,
		FilePath:   DefaultFilePath,
		MaxSize:    DefaultMaxSize,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAge,
		Compress:   DefaultCompress,
	}
}

// Config содержит настройки логирования.
type Config struct {
	// Format: "json" или "text".
	Format string

	// Level — минимальный уровень: "debug", "info", "warn", "error".
	// CLI по умолчанию пишет только warn и выше, чтобы не засорять терминал.
	Level string

	// Output: "stderr" или "file".
	Output string

	// FilePath — путь к файлу логов при Output="file".
	FilePath string

	// MaxSize — размер файла в мегабайтах до ротации.
	MaxSize int

	// MaxBackups — количество хранимых backup файлов.
	MaxBackups int

	// MaxAge — возраст backup файлов в днях.
	MaxAge int

	// Compress — сжимать backup файлы в gzip.
	Compress bool
}
