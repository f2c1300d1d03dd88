package config

// AppConfig holds service-wide settings that do not belong to a single
// collaborator package.
type AppConfig struct {
	// Id identifies this service instance in log lines and Kafka error
	// messages.
	Id string `mapstructure:"id" default:"dnssec-chain-validator"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"logLevel" default:"info"`

	// ExportDir is where JSON/text chain exports are written.
	ExportDir string `mapstructure:"exportDir" default:"exports"`
}
