package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-a", ":8081", "-x", "1"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", ":8081"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--addr=:8081", "-x", "1"},
			allowedFlags: []string{"--addr"},
			want:         []string{"--addr=:8081"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
		{
			name:         "flag followed by another flag has no value",
			args:         []string{"-a", "-s"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a"},
		},
		{
			name:         "order preserved across multiple allowed flags",
			args:         []string{"-s", "secret", "-a", ":9000"},
			allowedFlags: []string{"-a", "-s"},
			want:         []string{"-s", "secret", "-a", ":9000"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowedFlags))
		})
	}
}
