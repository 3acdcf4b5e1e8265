package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue string
		expected     string
	}{
		{name: "set value", value: "text", defaultValue: "json", expected: "text"},
		{name: "unset returns default", value: "", defaultValue: "json", expected: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_STRING", tt.value)
			}

			assert.Equal(t, tt.expected, GetEnvString("TEST_STRING", tt.defaultValue))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue int
		expected     int
	}{
		{name: "valid integer", value: "42", defaultValue: 4, expected: 42},
		{name: "unset returns default", value: "", defaultValue: 4, expected: 4},
		{name: "invalid returns default", value: "not-a-number", defaultValue: 4, expected: 4},
		{name: "negative integer", value: "-1", defaultValue: 4, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_INT", tt.value)
			}

			assert.Equal(t, tt.expected, GetEnvInt("TEST_INT", tt.defaultValue))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue bool
		expected     bool
	}{
		{name: "true value", value: "true", defaultValue: false, expected: true},
		{name: "numeric true", value: "1", defaultValue: false, expected: true},
		{name: "false value", value: "false", defaultValue: true, expected: false},
		{name: "numeric false", value: "0", defaultValue: true, expected: false},
		{name: "unset returns default", value: "", defaultValue: true, expected: true},
		{name: "invalid returns default", value: "maybe", defaultValue: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_BOOL", tt.value)
			}

			assert.Equal(t, tt.expected, GetEnvBool("TEST_BOOL", tt.defaultValue))
		})
	}
}
