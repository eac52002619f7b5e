package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, "run.json", `{"rule":"diffusion","n":32,"params":{"alpha":"0.1"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "diffusion", cfg.GetRule())
	assert.Equal(t, 32, cfg.GetN())
	assert.Equal(t, 100, cfg.GetSteps())
	assert.Equal(t, int64(42), cfg.GetSeed())
	assert.Equal(t, "uniform", cfg.GetPattern())
	assert.Equal(t, 10, cfg.GetLogEvery())
	assert.Zero(t, cfg.GetTimeout())
	assert.Equal(t, map[string]string{"alpha": "0.1"}, cfg.Params)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]struct {
		name string
		body string
	}{
		"extension":  {name: "run.yaml", body: `{}`},
		"syntax":     {name: "run.json", body: `{"n":`},
		"negative n": {name: "run.json", body: `{"n":-3}`},
		"timeout":    {name: "run.json", body: `{"timeout":"soon"}`},
	}
	for label, tc := range cases {
		t.Run(label, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.name, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorContains(t, err, "failed to stat")
}

func TestMergeOverlaysSetFields(t *testing.T) {
	base := &RunConfig{Params: map[string]string{"alpha": "0.2", "boundary": "wrap"}}
	n, timeout := 16, "2s"
	base.Merge(&RunConfig{N: &n, Timeout: &timeout, Params: map[string]string{"alpha": "0.05"}})

	assert.Equal(t, 16, base.GetN())
	assert.Equal(t, 2*time.Second, base.GetTimeout())
	assert.Equal(t, []string{"alpha", "boundary"}, base.ParamKeys())
	assert.Equal(t, "0.05", base.Params["alpha"])
	assert.Equal(t, "wrap", base.Params["boundary"])

	base.Merge(nil)
	assert.Equal(t, 16, base.GetN())
}
