package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DEVCONNECT_TEST_VALUE", "present")
	require.Equal(t, "present", GetEnv("DEVCONNECT_TEST_VALUE", "fallback"))
	require.Equal(t, "fallback", GetEnv("DEVCONNECT_TEST_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "42", want: 42},
		{name: "invalid falls back", value: "forty-two", want: 7},
		{name: "empty falls back", value: "", want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEVCONNECT_TEST_INT", tt.value)
			require.Equal(t, tt.want, GetEnvAsInt("DEVCONNECT_TEST_INT", 7))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("DEVCONNECT_TEST_DURATION", "90s")
	require.Equal(t, 90*time.Second, GetEnvAsDuration("DEVCONNECT_TEST_DURATION", time.Hour))

	t.Setenv("DEVCONNECT_TEST_DURATION", "soon")
	require.Equal(t, time.Hour, GetEnvAsDuration("DEVCONNECT_TEST_DURATION", time.Hour))
}
