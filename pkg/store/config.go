package store

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the local reverse proxy in front of the task service.
const DefaultBaseURL = "http://localhost:5173/api"

// DefaultTimeout bounds a single request to the service.
const DefaultTimeout = 30 * time.Second

// Config is the client's only external configuration: where the task
// resource lives and how long to wait for it.
type Config interface {
	BaseURL() string
	Timeout() time.Duration
	UserAgent() string
}

// LoadConfig reads .taskr.yaml from $TASKR_CONFIG_PATH, the working directory
// or the home directory, then applies TASKR_* environment overrides
// (TASKR_API_URL, TASKR_TIMEOUT, TASKR_USER_AGENT).
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("api_url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("user_agent", "taskr")
	v.SetConfigName(".taskr") // .yaml is implicit
	v.SetEnvPrefix("TASKR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TASKR_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &fileConfig{
		URL:   strings.TrimSpace(v.GetString("api_url")),
		Wait:  v.GetDuration("timeout"),
		Agent: v.GetString("user_agent"),
	}, nil
}

type fileConfig struct {
	URL   string        `json:"api_url"`
	Wait  time.Duration `json:"timeout"`
	Agent string        `json:"user_agent"`
}

func (f *fileConfig) BaseURL() string {
	if f.URL == "" {
		return DefaultBaseURL
	}
	return f.URL
}

func (f *fileConfig) Timeout() time.Duration {
	if f.Wait <= 0 {
		return DefaultTimeout
	}
	return f.Wait
}

func (f *fileConfig) UserAgent() string {
	return f.Agent
}
