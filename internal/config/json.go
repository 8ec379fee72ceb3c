package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenAudience   string   `json:"token_audience"`
		TokenDuration   Duration `json:"token_duration"`
		ExchangeTimeout Duration `json:"exchange_timeout"`
		IssuerURL       string   `json:"issuer_url"`
		Version         string   `json:"version"`
		LogLevel        string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
		StaticDir      string   `json:"static_dir"`
	} `json:"server,omitempty"`

	Swagger struct {
		Title       string `json:"title"`
		Version     string `json:"version"`
		Description string `json:"description"`
		License     string `json:"license"`
		Contact     string `json:"contact"`
		Endpoint    string `json:"endpoint"`
	} `json:"swagger,omitempty"`

	Workers struct {
		CleanupInterval Duration `json:"cleanup_interval"`
		Retention       Duration `json:"retention"`
		DisableJanitor  bool     `json:"disable_janitor"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenAudience:   jsonCfg.App.TokenAudience,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			ExchangeTimeout: time.Duration(jsonCfg.App.ExchangeTimeout),
			IssuerURL:       jsonCfg.App.IssuerURL,
			Version:         jsonCfg.App.Version,
			LogLevel:        jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			StaticDir:      jsonCfg.Server.StaticDir,
		},
		Swagger: Swagger{
			Title:       jsonCfg.Swagger.Title,
			Version:     jsonCfg.Swagger.Version,
			Description: jsonCfg.Swagger.Description,
			License:     jsonCfg.Swagger.License,
			Contact:     jsonCfg.Swagger.Contact,
			Endpoint:    jsonCfg.Swagger.Endpoint,
		},
		Workers: Workers{
			CleanupInterval: time.Duration(jsonCfg.Workers.CleanupInterval),
			Retention:       time.Duration(jsonCfg.Workers.Retention),
			DisableJanitor:  jsonCfg.Workers.DisableJanitor,
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
