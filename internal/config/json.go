package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file. The access token is intentionally absent: credentials come
// from the environment or flags only.
type StructuredJSONConfig struct {
	App struct {
		DefaultDeckName string   `json:"default_deck_name"`
		NoticeTTL       Duration `json:"notice_ttl"`
		LogFile         string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			ExportDir string `json:"export_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		DriveAddress     string   `json:"drive_address"`
		GeneratorAddress string   `json:"generator_address"`
		RequestTimeout   Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		BackupInterval Duration `json:"backup_interval"`
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
			DefaultDeckName: jsonCfg.App.DefaultDeckName,
			NoticeTTL:       time.Duration(jsonCfg.App.NoticeTTL),
			LogFile:         jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				ExportDir: jsonCfg.Storage.Files.ExportDir,
			},
		},
		Adapter: Adapter{
			DriveAddress:     jsonCfg.Adapter.DriveAddress,
			GeneratorAddress: jsonCfg.Adapter.GeneratorAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			BackupInterval: time.Duration(jsonCfg.Workers.BackupInterval),
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
