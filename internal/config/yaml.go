package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadYAMLConfig load config from filename in YAML format, expanding ${VAR}
// references from the environment first
func LoadYAMLConfig(filename string, cfg interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("ReadFile: %v", err)
	}
	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg)
	return err
}

func InitConfig(configPath string) (*Config, error) {
	conf := DefaultConfig()

	err := LoadYAMLConfig(configPath, conf)
	if err != nil {
		return nil, err
	}

	return conf, nil
}
