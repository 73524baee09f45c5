/*
Copyright (C) GRyCAP - I3M - UPV

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/grycap/awsome-cli/pkg/profile"
)

const defaultConfig = ".awsome-cli/config.yaml"

var (
	errNoConfigFile       = errors.New("the configuration file doesn't exists. Please provide a valid one or create it with \"awsome-cli profile add\"")
	errParsingConfigFile  = errors.New("the configuration file provided is not valid. Please provide a valid one or create it with \"awsome-cli profile add\"")
	errCreatingConfigFile = errors.New("error creating the config file. Please check the path is correct and you have the appropriate permissions")
	profileNotDefinedMsg  = "the profile \"%s\" doesn't exist"
)

// Config stores the configuration of awsome-cli
type Config struct {
	Profiles map[string]*profile.Profile `json:"profiles" binding:"required"`
	Default  string                      `json:"default,omitempty"`
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() (defaultConfigPath string, err error) {
	// Get the current user
	user, err := user.Current()
	if err != nil {
		return "", err
	}

	// Join the home dir with the default config path
	defaultConfigPath = path.Join(user.HomeDir, defaultConfig)

	return defaultConfigPath, nil
}

// ReadConfig reads the configuration file
func ReadConfig(configPath string) (config *Config, err error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		// Return errNoConfigFile if the file doesn't exists
		return nil, errNoConfigFile
	}

	config = &Config{}
	// Unmarshal the config file (YAML or JSON)
	configExtension := filepath.Ext(configPath)
	if configExtension == ".yaml" || configExtension == ".yml" {
		if err = yaml.Unmarshal(content, config); err != nil {
			return nil, errParsingConfigFile
		}
	} else {
		// Default JSON
		if err = json.Unmarshal(content, config); err != nil {
			return nil, errParsingConfigFile
		}
	}
	if config.Profiles == nil {
		config.Profiles = map[string]*profile.Profile{}
	}

	return config, nil
}

func (config *Config) writeConfig(configPath string) (err error) {
	// Marshal the config content (YAML or JSON)
	configExtension := filepath.Ext(configPath)
	var configContent []byte
	if configExtension == ".yaml" || configExtension == ".yml" {
		configContent, err = yaml.Marshal(config)
		if err != nil {
			return err
		}
	} else {
		// Default JSON
		configContent, err = json.MarshalIndent(config, "", "  ")
		if err != nil {
			return err
		}
	}

	// Create the config path (if required) and write the config file
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return errCreatingConfigFile
	}
	if err := os.WriteFile(configPath, configContent, 0600); err != nil {
		return errCreatingConfigFile
	}

	return nil
}

// AddProfile adds (or overwrites) a profile in the config
func (config *Config) AddProfile(configPath string, id string, prof *profile.Profile) error {
	config.Profiles[id] = prof

	// If there is only one profile set as default
	if len(config.Profiles) == 1 {
		config.Default = id
	}

	return config.writeConfig(configPath)
}

// RemoveProfile removes a profile from the config
func (config *Config) RemoveProfile(configPath, id string) error {
	// Check if the profile id exists
	if err := config.CheckProfile(id); err != nil {
		return err
	}

	delete(config.Profiles, id)

	// Delete the identifier from default if set
	if config.Default == id {
		config.Default = ""
	}

	return config.writeConfig(configPath)
}

// CheckProfile checks if a profile exists and returns an error if not
func (config *Config) CheckProfile(id string) error {
	if _, exists := config.Profiles[id]; !exists {
		return fmt.Errorf(profileNotDefinedMsg, id)
	}
	return nil
}

// GetProfile resolves the profile to use: the explicit id when given, the
// configured default otherwise
func (config *Config) GetProfile(id string) (string, *profile.Profile, error) {
	if id == "" {
		id = config.Default
	}
	if id == "" {
		return "", nil, errors.New("no default profile configured. Please use the --profile flag or set a default with \"awsome-cli profile default\"")
	}
	if err := config.CheckProfile(id); err != nil {
		return "", nil, err
	}
	return id, config.Profiles[id], nil
}

// SetDefault sets the default profile in the config file
func (config *Config) SetDefault(configPath, id string) error {
	// Check if the profile id exists
	if err := config.CheckProfile(id); err != nil {
		return err
	}

	config.Default = id

	return config.writeConfig(configPath)
}
