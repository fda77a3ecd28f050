// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Session string `json:"session"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Tree struct {
		Builder string `json:"builder"`
		Mode    string `json:"mode"`
	} `json:"tree,omitempty"`

	Serializer struct {
		DispatchDelay     Duration `json:"dispatch_delay"`
		BusyDispatchDelay Duration `json:"busy_dispatch_delay"`
		QueueSize         int      `json:"queue_size"`
	} `json:"serializer,omitempty"`

	Source struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		PollInterval   Duration `json:"poll_interval"`
		SnapshotFile   string   `json:"snapshot_file"`
	} `json:"source,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Address string `json:"address"`
	} `json:"server,omitempty"`

	ChangeSets []ChangeSet `json:"change_sets,omitempty"`
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
			Session: jsonCfg.App.Session,
			Version: jsonCfg.App.Version,
		},
		Tree: Tree{
			Builder: jsonCfg.Tree.Builder,
			Mode:    jsonCfg.Tree.Mode,
		},
		Serializer: Serializer{
			DispatchDelay:     time.Duration(jsonCfg.Serializer.DispatchDelay),
			BusyDispatchDelay: time.Duration(jsonCfg.Serializer.BusyDispatchDelay),
			QueueSize:         jsonCfg.Serializer.QueueSize,
		},
		Source: Source{
			Address:        jsonCfg.Source.Address,
			RequestTimeout: time.Duration(jsonCfg.Source.RequestTimeout),
			PollInterval:   time.Duration(jsonCfg.Source.PollInterval),
			SnapshotFile:   jsonCfg.Source.SnapshotFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			Address: jsonCfg.Server.Address,
		},
		ChangeSets:   jsonCfg.ChangeSets,
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
