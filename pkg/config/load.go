package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/ghodss/yaml"
)

// ClientConfig is the YAML document accepted by --admin-config-file. It holds
// the same key=value client properties as --admin-config, for setups where
// the connection settings live in a checked-in file rather than on the
// command line.
type ClientConfig struct {
	// Properties are client properties, applied before any --admin-config
	// pairs from the command line.
	Properties map[string]string `json:"properties"`
}

// LoadClientFile loads a ClientConfig from a path to a YAML file.
func LoadClientFile(path string, expandEnv bool) (ClientConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return ClientConfig{}, err
	}

	if expandEnv {
		contents = []byte(os.ExpandEnv(string(contents)))
	}

	return LoadClientBytes(contents)
}

// LoadClientBytes loads a ClientConfig from YAML bytes.
func LoadClientBytes(contents []byte) (ClientConfig, error) {
	config := ClientConfig{}
	err := unmarshalYAMLStrict(contents, &config)
	return config, err
}

func unmarshalYAMLStrict(y []byte, o interface{}) error {
	jsonBytes, err := yaml.YAMLToJSON(y)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(jsonBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(o)
}
