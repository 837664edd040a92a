package admin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/segmentio/kafka-go"
)

// Properties is a set of string key/value client or topic properties. Values
// are staged into the map in the order they were provided, so duplicate keys
// resolve to the last write.
type Properties map[string]string

// ParseProperties converts a sequence of key=value tokens into a Properties
// map. Each token must split into exactly two non-empty parts on the first
// "=". The argument option name is only used for error messages.
func ParseProperties(tokens []string, option string) (Properties, error) {
	props := Properties{}

	for _, token := range tokens {
		key, value, err := splitPair(token)
		if err != nil {
			return nil, fmt.Errorf(
				"Wrong value %q for %s: %v",
				token,
				option,
				err,
			)
		}
		props[key] = value
	}

	return props, nil
}

func splitPair(token string) (string, string, error) {
	subcomponents := strings.SplitN(token, "=", 2)
	if len(subcomponents) != 2 || subcomponents[0] == "" || subcomponents[1] == "" {
		return "", "", fmt.Errorf("must follow key=value format")
	}
	return subcomponents[0], subcomponents[1], nil
}

// Overlay writes every entry of the argument map over the receiver,
// overwriting duplicate keys.
func (p Properties) Overlay(other Properties) {
	for key, value := range other {
		p[key] = value
	}
}

// Get returns the value for the argument key or the empty string if unset.
func (p Properties) Get(key string) string {
	return p[key]
}

// ConfigEntries converts the properties into kafka-go topic config entries,
// sorted by key so that request contents are deterministic.
func (p Properties) ConfigEntries() []kafka.ConfigEntry {
	keys := []string{}
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := []kafka.ConfigEntry{}
	for _, key := range keys {
		entries = append(
			entries,
			kafka.ConfigEntry{
				ConfigName:  key,
				ConfigValue: p[key],
			},
		)
	}
	return entries
}
