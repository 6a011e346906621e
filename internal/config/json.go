package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Auth struct {
		SessionSignKey  string   `json:"session_sign_key"`
		SessionIssuer   string   `json:"session_issuer"`
		SessionDuration Duration `json:"session_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		Driver    string `json:"driver"`
		StatePath string `json:"state_path"`
		DSN       string `json:"dsn"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Billing struct {
		SettleDelay   Duration `json:"settle_delay"`
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"billing,omitempty"`

	Catalog struct {
		SeedPath string `json:"seed_path"`
	} `json:"catalog,omitempty"`

	Admin struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"admin,omitempty"`
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
		Auth: Auth{
			SessionSignKey:  jsonCfg.Auth.SessionSignKey,
			SessionIssuer:   jsonCfg.Auth.SessionIssuer,
			SessionDuration: time.Duration(jsonCfg.Auth.SessionDuration),
		},
		Storage: Storage{
			Driver:    jsonCfg.Storage.Driver,
			StatePath: jsonCfg.Storage.StatePath,
			DSN:       jsonCfg.Storage.DSN,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Billing: Billing{
			SettleDelay:   time.Duration(jsonCfg.Billing.SettleDelay),
			SweepInterval: time.Duration(jsonCfg.Billing.SweepInterval),
		},
		Catalog: Catalog{
			SeedPath: jsonCfg.Catalog.SeedPath,
		},
		Admin: Admin{
			ServerURL:      jsonCfg.Admin.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Admin.RequestTimeout),
		},
		JSONFilePath: "",
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
