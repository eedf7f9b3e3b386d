package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrInvalidHost             = errors.New("host must be set")
	ErrInvalidPort             = errors.New("port must be between 1 and 65535")
	ErrInvalidChunkSize        = errors.New("chunk size must be greater than 0")
	ErrInvalidHeaderBufferSize = errors.New("header buffer size must be greater than 0")
	ErrInvalidMaxConnections   = errors.New("max connections must not be negative")
	ErrInvalidProgressMode     = errors.New("progress mode must be one of: lines, bar, none")
)

// Progress display modes
const (
	ProgressLines = "lines"
	ProgressBar   = "bar"
	ProgressNone  = "none"
)

// Config holds all application configuration
type Config struct {
	Network  NetworkConfig  `mapstructure:"network"`
	Transfer TransferConfig `mapstructure:"transfer"`
	UI       UIConfig       `mapstructure:"ui"`
}

// NetworkConfig holds the TCP endpoint both sides agree on
type NetworkConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"` // 0 disables the timeout
}

// TransferConfig holds chunking and output settings
type TransferConfig struct {
	ChunkSize        int    `mapstructure:"chunk_size"`
	HeaderBufferSize int    `mapstructure:"header_buffer_size"`
	OutputDir        string `mapstructure:"output_dir"`
	OutputPrefix     string `mapstructure:"output_prefix"`
	Strict           bool   `mapstructure:"strict"`     // treat early peer close as an error
	KeepAlive        bool   `mapstructure:"keep_alive"` // keep accepting after the first transfer
	MaxConnections   int    `mapstructure:"max_connections"`
}

// UIConfig controls console output
type UIConfig struct {
	Progress string `mapstructure:"progress"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Network: NetworkConfig{
			Host: "0.0.0.0",
			Port: 8089,
		},
		Transfer: TransferConfig{
			ChunkSize:        1024, // 1 KB chunks
			HeaderBufferSize: 1024,
			OutputDir:        ".",
			OutputPrefix:     "received_",
		},
		UI: UIConfig{
			Progress: ProgressLines,
		},
	}
}

// SetDefaults registers every default value with v so that config files,
// environment variables and bound flags can override them key by key.
func SetDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault("network.host", d.Network.Host)
	v.SetDefault("network.port", d.Network.Port)
	v.SetDefault("network.dial_timeout", d.Network.DialTimeout)
	v.SetDefault("transfer.chunk_size", d.Transfer.ChunkSize)
	v.SetDefault("transfer.header_buffer_size", d.Transfer.HeaderBufferSize)
	v.SetDefault("transfer.output_dir", d.Transfer.OutputDir)
	v.SetDefault("transfer.output_prefix", d.Transfer.OutputPrefix)
	v.SetDefault("transfer.strict", d.Transfer.Strict)
	v.SetDefault("transfer.keep_alive", d.Transfer.KeepAlive)
	v.SetDefault("transfer.max_connections", d.Transfer.MaxConnections)
	v.SetDefault("ui.progress", d.UI.Progress)
}

// Load builds a validated Config from v
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c.Network.Host == "" {
		return ErrInvalidHost
	}
	if c.Network.Port <= 0 || c.Network.Port > 65535 {
		return ErrInvalidPort
	}
	if c.Transfer.ChunkSize <= 0 {
		return ErrInvalidChunkSize
	}
	if c.Transfer.HeaderBufferSize <= 0 {
		return ErrInvalidHeaderBufferSize
	}
	if c.Transfer.MaxConnections < 0 {
		return ErrInvalidMaxConnections
	}
	switch c.UI.Progress {
	case ProgressLines, ProgressBar, ProgressNone:
	default:
		return ErrInvalidProgressMode
	}
	return nil
}

// Address returns the host:port pair used for both listening and dialing
func (c *Config) Address() string {
	return net.JoinHostPort(c.Network.Host, strconv.Itoa(c.Network.Port))
}
