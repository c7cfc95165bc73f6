package config

import (
	"errors"
	"testing"

	"github.com/0xalexb/hjarta-config/config/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInvalidPort = errors.New("port must be between 1 and 65535")

type listenerConfig struct {
	Host string `config:"host"`
	Port *int   `config:"port"`
}

func (c *listenerConfig) SetDefaults() bool {
	if c.Port != nil {
		return false
	}

	port := 8080
	c.Port = &port

	return true
}

func (c *listenerConfig) Validate() error {
	if *c.Port < 1 || *c.Port > 65535 {
		return errInvalidPort
	}

	return nil
}

type plainConfig struct {
	Name string `config:"name"`
}

func testTree() *Config {
	return FromTable(value.Table{
		"name": "svc",
		"http": value.Table{
			"host": "localhost",
		},
		"admin": value.Table{
			"host": "0.0.0.0",
			"port": int64(9090),
		},
		"broken": value.Table{
			"host": "x",
			"port": int64(70000),
		},
		"untyped": value.Table{
			"host": int64(1),
		},
	})
}

func TestProvider_WholeTree(t *testing.T) {
	t.Parallel()

	result, err := Provider[plainConfig]("")(testTree())

	require.NoError(t, err)
	assert.Equal(t, "svc", result.Name)
}

func TestProvider_AppliesDefaults(t *testing.T) {
	t.Parallel()

	result, err := Provider[listenerConfig]("http")(testTree())

	require.NoError(t, err)
	assert.Equal(t, "localhost", result.Host)
	require.NotNil(t, result.Port)
	assert.Equal(t, 8080, *result.Port)
}

func TestProvider_KeepsConfiguredValues(t *testing.T) {
	t.Parallel()

	result, err := Provider[listenerConfig]("admin")(testTree())

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", result.Host)
	assert.Equal(t, 9090, *result.Port)
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing section", path: "nope", wantErr: ErrKeyNotFound},
		{name: "section is not a table", path: "name", wantErr: ErrTypeMismatch},
		{name: "decode error", path: "untyped", wantErr: ErrFieldTypeMismatch},
		{name: "validation error", path: "broken", wantErr: errInvalidPort},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			result, err := Provider[listenerConfig](testInfo.path)(testTree())

			assert.Nil(t, result)
			require.Error(t, err)
			require.ErrorIs(t, err, testInfo.wantErr)
			assert.Contains(t, err.Error(), testInfo.path)
		})
	}
}
