package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	UploadFolderPath    string `json:"uploadFolderPath"`
	ExportFolderPath    string `json:"exportFolderPath"`
	HistoryDisplayLimit int    `json:"historyDisplayLimit"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./shroomworks_config.json"

func applyDefaults(c *Config) {
	if c.UploadFolderPath == "" {
		c.UploadFolderPath = "uploads"
	}
	if c.ExportFolderPath == "" {
		c.ExportFolderPath = "."
	}
	if c.HistoryDisplayLimit == 0 {
		c.HistoryDisplayLimit = 5
	}
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return cfg, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&tempCfg)
	cfg = tempCfg

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	c := cfg
	applyDefaults(&c)
	return c
}
