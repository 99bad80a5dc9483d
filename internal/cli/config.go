package cli

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved configuration of one invocation
type Config struct {
	GeminiKey       string
	OpenAIKey       string
	TTSModel        string
	Fallback        string
	ExtractModel    string
	StoragePath     string
	StoragePrefix   string
	RetryCount      uint64
	RetryBase       time.Duration
	SimulateLatency bool
	FailureRate     float64
	EnableCache     bool
	CacheDir        string
	Verbose         bool
}

func setDefaults() {
	viper.SetDefault("tts.model", "gemini-2.5-flash-preview-tts")
	viper.SetDefault("extract.model", "gemini-3-flash-preview")
	viper.SetDefault("storage.path", DefaultStoragePath())
	viper.SetDefault("storage.prefix", "")
	viper.SetDefault("retry.count", 3)
	viper.SetDefault("retry.base", 2*time.Second)
	viper.SetDefault("simulate.latency", true)
	viper.SetDefault("simulate.failure_rate", 0.05)
	viper.SetDefault("cache.enable", false)
	viper.SetDefault("cache.dir", "")
}

// LoadConfig reads the configuration from viper and the environment.
// Without an explicit fallback, OpenAI is used whenever its key is set.
func LoadConfig() Config {
	setDefaults()

	retries := viper.GetInt("retry.count")
	if retries < 0 {
		retries = 0
	}
	cfg := Config{
		GeminiKey:       GetGeminiKey(),
		OpenAIKey:       GetOpenAIKey(),
		TTSModel:        viper.GetString("tts.model"),
		Fallback:        viper.GetString("tts.fallback"),
		ExtractModel:    viper.GetString("extract.model"),
		StoragePath:     viper.GetString("storage.path"),
		StoragePrefix:   viper.GetString("storage.prefix"),
		RetryCount:      uint64(retries),
		RetryBase:       viper.GetDuration("retry.base"),
		SimulateLatency: viper.GetBool("simulate.latency"),
		FailureRate:     viper.GetFloat64("simulate.failure_rate"),
		EnableCache:     viper.GetBool("cache.enable"),
		CacheDir:        viper.GetString("cache.dir"),
		Verbose:         viper.GetBool("log.verbose"),
	}
	if cfg.Fallback == "" && cfg.OpenAIKey != "" {
		cfg.Fallback = "openai"
	}
	if cfg.Fallback == "none" {
		cfg.Fallback = ""
	}
	return cfg
}
