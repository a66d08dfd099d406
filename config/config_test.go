package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fuzzstream "github.com/yyyoichi/dfuzzstream"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	s, err := cfg.NewSummarizer()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoadFile(t *testing.T) {
	test := []struct {
		name string
		file string
		body string
	}{
		{"yaml", "dfuzzstream.yaml", "min_fmics: 3\nmax_fmics: 40\nmerge_threshold: 0.8\nradius_factor: 1.5\nm: 2.5\n"},
		{"json", "dfuzzstream.json", `{"min_fmics": 3, "max_fmics": 40, "merge_threshold": 0.8, "radius_factor": 1.5, "m": 2.5}`},
		{"toml", "dfuzzstream.toml", "min_fmics = 3\nmax_fmics = 40\nmerge_threshold = 0.8\nradius_factor = 1.5\nm = 2.5\n"},
	}
	exp := Config{MinFMiCs: 3, MaxFMiCs: 40, MergeThreshold: 0.8, RadiusFactor: 1.5, M: 2.5}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.body), nil)
			require.NoError(t, err)
			assert.Equal(t, exp, cfg)
		})
	}
}

func TestLoadPartialFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "c.yaml", "max_fmics: 10\n"), nil)
	require.NoError(t, err)
	exp := Default()
	exp.MaxFMiCs = 10
	assert.Equal(t, exp, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "c.yaml", "min_fmics: 3\nmax_fmics: 50\nm: 4\n")
	t.Setenv(EnvPrefix+"_MAX_FMICS", "60")
	t.Setenv(EnvPrefix+"_M", "3")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--fuzzifier=1.5"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MinFMiCs)  // file
	assert.Equal(t, 60, cfg.MaxFMiCs) // env over file
	assert.Equal(t, 1.5, cfg.M)       // flag over env
	assert.Equal(t, 1.0, cfg.MergeThreshold)
}

func TestOptionsValidate(t *testing.T) {
	cfg := Default()
	cfg.M = 1
	_, err := cfg.NewSummarizer()
	assert.ErrorIs(t, err, fuzzstream.ErrInvalidFuzzifier)

	cfg = Default()
	cfg.MinFMiCs = 20
	cfg.MaxFMiCs = 10
	_, err = cfg.NewSummarizer()
	assert.ErrorIs(t, err, fuzzstream.ErrInvalidCapacity)
}
