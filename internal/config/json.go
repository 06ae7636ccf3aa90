package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the JSON config file. Flags that only make sense per invocation (recurse,
// date, quiet) are not read from the file.
type StructuredJSONConfig struct {
	App struct {
		APIKey    string `json:"api_key"`
		APISecret string `json:"api_secret"`
		AuthToken string `json:"auth_token"`
		UserID    string `json:"user_id"`
	} `json:"app,omitempty"`

	Adapter struct {
		Endpoint          string   `json:"endpoint"`
		RequestTimeout    Duration `json:"request_timeout"`
		RequestsPerSecond float64  `json:"requests_per_second"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Dir        string `json:"dir"`
		JournalDSN string `json:"journal_dsn"`
	} `json:"storage,omitempty"`

	Sync struct {
		Limit         string   `json:"limit"`
		RetryAttempts int      `json:"retry_attempts"`
		RetryDelay    Duration `json:"retry_delay"`
		MaxChainDepth int      `json:"max_chain_depth"`
	} `json:"sync,omitempty"`

	Telemetry struct {
		OTLPEndpoint string `json:"otlp_endpoint"`
	} `json:"telemetry,omitempty"`
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
			APIKey:    jsonCfg.App.APIKey,
			APISecret: jsonCfg.App.APISecret,
			AuthToken: jsonCfg.App.AuthToken,
			UserID:    jsonCfg.App.UserID,
		},
		Adapter: Adapter{
			Endpoint:          jsonCfg.Adapter.Endpoint,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			RequestsPerSecond: jsonCfg.Adapter.RequestsPerSecond,
		},
		Storage: Storage{
			Dir:        jsonCfg.Storage.Dir,
			JournalDSN: jsonCfg.Storage.JournalDSN,
		},
		Sync: Sync{
			Limit:         jsonCfg.Sync.Limit,
			RetryAttempts: jsonCfg.Sync.RetryAttempts,
			RetryDelay:    time.Duration(jsonCfg.Sync.RetryDelay),
			MaxChainDepth: jsonCfg.Sync.MaxChainDepth,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: jsonCfg.Telemetry.OTLPEndpoint,
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
