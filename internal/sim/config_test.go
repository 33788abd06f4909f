package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prsim/internal/prqueue"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	for _, path := range []string{"", "does-not-exist.yml"} {
		cfg := Load(path)
		assert.Equal(t, "max", cfg.OrderMode)
		assert.Equal(t, prqueue.ModeMax, cfg.Mode())
		assert.Empty(t, cfg.TraceCSV)
		assert.Empty(t, cfg.Tasks)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
order_mode: min
trace_csv: trace.csv
tasks:
  - id: A
    priority: 3
    arrival: 0
    deadline: 5
  - id: B
    priority: 5
    arrival: 1
    payload:
      owner: ops
`)

	cfg := Load(path)
	assert.Equal(t, prqueue.ModeMin, cfg.Mode())
	assert.Equal(t, "trace.csv", cfg.TraceCSV)
	require.Len(t, cfg.Tasks, 2)

	tasks := cfg.TaskList()
	require.Len(t, tasks, 2)
	assert.Equal(t, prqueue.TaskID("A"), tasks[0].ID)
	assert.Equal(t, int64(5), tasks[0].Deadline)
	assert.Nil(t, tasks[0].Payload)
	assert.Equal(t, prqueue.TaskID("B"), tasks[1].ID)
	assert.Equal(t, int64(0), tasks[1].Arrival, "missing arrival means eligible at 0")
	assert.Equal(t, map[string]any{"owner": "ops"}, tasks[1].Payload)
}

func TestLoadClampsBadOrderMode(t *testing.T) {
	path := writeConfig(t, "order_mode: sideways\n")

	cfg := Load(path)
	assert.Equal(t, "max", cfg.OrderMode)
	assert.Equal(t, prqueue.ModeMax, cfg.Mode())
}
