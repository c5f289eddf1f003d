package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenAudience string   `json:"token_audience"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		AuthRateLimit      float64  `json:"auth_rate_limit"`
		AuthRateBurst      int      `json:"auth_rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		TMDB struct {
			BaseURL      string   `json:"base_url"`
			ImageBaseURL string   `json:"image_base_url"`
			APIKey       string   `json:"api_key"`
			Timeout      Duration `json:"timeout"`
		} `json:"tmdb,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenAudience: jsonCfg.Auth.TokenAudience,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(jsonCfg.Server.ShutdownTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			AuthRateLimit:      jsonCfg.Server.AuthRateLimit,
			AuthRateBurst:      jsonCfg.Server.AuthRateBurst,
		},
		Adapter: Adapter{
			TMDB: TMDB{
				BaseURL:      jsonCfg.Adapter.TMDB.BaseURL,
				ImageBaseURL: jsonCfg.Adapter.TMDB.ImageBaseURL,
				APIKey:       jsonCfg.Adapter.TMDB.APIKey,
				Timeout:      time.Duration(jsonCfg.Adapter.TMDB.Timeout),
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
