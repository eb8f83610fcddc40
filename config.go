// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type TreeConfig struct {
	KeyType string `yaml:"key_type"`
}

type CheckConfig struct {
	Sizes        []int `yaml:"sizes"`
	Seed         int64 `yaml:"seed"`    // 0 picks a time-based seed
	MaxKey       int64 `yaml:"max_key"` // 0 means the full int64 range
	StringLength int   `yaml:"string_length"`
	ShowProgress bool  `yaml:"show_progress"`
}

type ViewConfig struct {
	CacheMinutes int `yaml:"cache_minutes"`
}

type Config struct {
	Tree  TreeConfig  `yaml:"tree"`
	Check CheckConfig `yaml:"check"`
	View  ViewConfig  `yaml:"view"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		KeyType: "int",
	},
	Check: CheckConfig{
		Sizes:        []int{1, 3, 5, 10, 15, 50, 100, 200, 500, 1000, 1234},
		Seed:         0,
		MaxKey:       0,
		StringLength: 8,
		ShowProgress: true,
	},
	View: ViewConfig{
		CacheMinutes: 30,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avltree.yaml. Any problem reading or parsing it yields
// the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return newDefaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

// newDefaultConfig returns a copy of defaultConfig that callers may mutate.
func newDefaultConfig() *Config {
	config := defaultConfig
	config.Check.Sizes = append([]int(nil), defaultConfig.Check.Sizes...)
	return &config
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return newDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return newDefaultConfig(), nil
	}

	// Keys missing from the file keep their default values.
	config := newDefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return newDefaultConfig(), nil
	}

	if len(config.Check.Sizes) == 0 {
		config.Check.Sizes = newDefaultConfig().Check.Sizes
	}
	if config.Check.StringLength <= 0 {
		config.Check.StringLength = defaultConfig.Check.StringLength
	}
	if config.View.CacheMinutes <= 0 {
		config.View.CacheMinutes = defaultConfig.View.CacheMinutes
	}
	return config, nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 avltree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %skey_type%s: %s\n\n", Green, Reset, config.Tree.KeyType)

	sizes := make([]string, len(config.Check.Sizes))
	for i, n := range config.Check.Sizes {
		sizes[i] = fmt.Sprint(n)
	}
	seed := fmt.Sprint(config.Check.Seed)
	if config.Check.Seed == 0 {
		seed = "0 (time-based)"
	}

	fmt.Printf("🎲 %sRandomized check:%s\n", Green, Reset)
	fmt.Printf("  • %ssizes%s: %s\n", Green, Reset, strings.Join(sizes, ", "))
	fmt.Printf("  • %sseed%s: %s\n", Green, Reset, seed)
	fmt.Printf("  • %smax_key%s: %d\n", Green, Reset, config.Check.MaxKey)
	fmt.Printf("  • %sstring_length%s: %d\n", Green, Reset, config.Check.StringLength)
	fmt.Printf("  • %sshow_progress%s: %v\n\n", Green, Reset, config.Check.ShowProgress)

	fmt.Printf("🖼  %sView:%s\n", Green, Reset)
	fmt.Printf("  • %scache_minutes%s: %d\n\n", Green, Reset, config.View.CacheMinutes)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
}
