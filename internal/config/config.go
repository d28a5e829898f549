package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Folder    string
	UseSSL    bool
	Region    string
}

// Configured reports whether provider credentials look present. Missing
// credentials do not prevent startup; calls fail on first use instead.
func (c StorageConfig) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}

type UploadConfig struct {
	MaxFiles    int
	MaxFileSize int64
	// Timeout bounds one whole batch when set. Zero disables it, which is
	// the default: a hung provider call then blocks its request.
	Timeout time.Duration
}

type TranscodeConfig struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Storage          StorageConfig
	Upload           UploadConfig
	Transcode        TranscodeConfig
	AllowCORSOrigins []string
}

func (c *AppConfig) Development() bool {
	return c.Environment == "development"
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("IMAGERELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 3000)
	v.SetDefault("http.readtimeout", "30s")
	v.SetDefault("http.writetimeout", "60s")
	v.SetDefault("http.idletimeout", "60s")

	// Empty defaults keep the credential keys visible to AutomaticEnv.
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.accesskey", "")
	v.SetDefault("storage.secretkey", "")
	v.SetDefault("storage.bucket", "imagerelay")
	v.SetDefault("storage.folder", "uploads")
	v.SetDefault("storage.usessl", true)
	v.SetDefault("storage.region", "us-east-1")

	v.SetDefault("upload.maxfiles", 5)
	v.SetDefault("upload.maxfilesize", 10<<20)
	v.SetDefault("upload.timeout", "0s")

	v.SetDefault("transcode.maxwidth", 1920)
	v.SetDefault("transcode.maxheight", 1080)
	v.SetDefault("transcode.quality", 85)
}
