package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name       string
		explicit   string
		env        string
		configured string
		want       string
	}{
		{
			name: "Default Under Home",
			want: filepath.Join(home, DefaultFileName),
		},
		{
			name:       "Configured",
			configured: "/data/configured.json",
			want:       "/data/configured.json",
		},
		{
			name:       "Env Beats Config",
			env:        "/data/env.json",
			configured: "/data/configured.json",
			want:       "/data/env.json",
		},
		{
			name:       "Flag Beats Everything",
			explicit:   "/data/flag.json",
			env:        "/data/env.json",
			configured: "/data/configured.json",
			want:       "/data/flag.json",
		},
		{
			name:     "Tilde Expanded",
			explicit: "~/elsewhere.json",
			want:     filepath.Join(home, "elsewhere.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvStoreFile, tt.env)

			got, err := ResolvePath(tt.explicit, tt.configured)
			require.NoError(t, err)
			assert.Equal(t, filepath.Clean(tt.want), got)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/me", ".notes.json"), DefaultPath("/home/me"))
}
