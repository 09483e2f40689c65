package config

import "time"

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     yaml:"server"     json:"server"`
	Log        LogConfig        `mapstructure:"log"        yaml:"log"        json:"log"`
	Extraction ExtractionConfig `mapstructure:"extraction" yaml:"extraction" json:"extraction"`
	Analyzer   AnalyzerConfig   `mapstructure:"analyzer"   yaml:"analyzer"   json:"analyzer"`
	Tracing    TracingConfig    `mapstructure:"tracing"    yaml:"tracing"    json:"tracing"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host" json:"host"`
	Port int    `mapstructure:"port" yaml:"port" json:"port" validate:"min=1,max=65535"`
	// MaxRequestSize is the upload limit in bytes.
	MaxRequestSize int64         `mapstructure:"max_request_size" yaml:"max_request_size" json:"max_request_size" validate:"gt=0"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"  yaml:"request_timeout"  json:"request_timeout"  validate:"gte=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" json:"level"`
}

// ExtractionConfig controls how uploaded documents are turned into page text.
type ExtractionConfig struct {
	Source   string `mapstructure:"source"    yaml:"source"    json:"source"    validate:"oneof=auto pdf text stub"`
	MaxPages int    `mapstructure:"max_pages" yaml:"max_pages" json:"max_pages" validate:"gte=0"`
}

type AnalyzerConfig struct {
	Concurrency int `mapstructure:"concurrency"  yaml:"concurrency"  json:"concurrency"  validate:"gte=1"`
	MaxPointers int `mapstructure:"max_pointers" yaml:"max_pointers" json:"max_pointers" validate:"gte=0"`
}

type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"  yaml:"enabled"  json:"enabled"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint" validate:"required_if=Enabled true"`
}

const (
	SourceAuto = "auto"
	SourcePDF  = "pdf"
	SourceText = "text"
	SourceStub = "stub"
)

// defaultConfig supplies a value for every option the config file or ENV leaves unset.
var defaultConfig = Config{
	Server: ServerConfig{
		Port:           8000,
		MaxRequestSize: 10 << 20,
		RequestTimeout: 30 * time.Second,
	},
	Log: LogConfig{
		Level: "info",
	},
	Extraction: ExtractionConfig{
		Source: SourceAuto,
	},
	Analyzer: AnalyzerConfig{
		Concurrency: 4,
	},
	Tracing: TracingConfig{
		Endpoint: "localhost:4318",
	},
}

// Default returns a copy of the default configuration.
func Default() *Config {
	cfg := defaultConfig
	return &cfg
}
