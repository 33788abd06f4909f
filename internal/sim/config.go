package sim

import (
	"os"

	yaml "github.com/goccy/go-yaml"

	"prsim/internal/prqueue"
)

// Config mirrors config.yml
type Config struct {
	OrderMode string     `yaml:"order_mode"` // "max" (by default) or "min"
	TraceCSV  string     `yaml:"trace_csv"`  // empty disables the CSV trace
	Tasks     []TaskSpec `yaml:"tasks"`      // declarative task set; may be empty
}

// TaskSpec declares one task in the config file.
type TaskSpec struct {
	ID       string         `yaml:"id"`
	Priority int            `yaml:"priority"`
	Arrival  int64          `yaml:"arrival"`
	Deadline int64          `yaml:"deadline"`
	Payload  map[string]any `yaml:"payload"`
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		OrderMode: "max",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if _, ok := prqueue.ParseOrderMode(cfg.OrderMode); !ok {
		cfg.OrderMode = "max"
	}

	return cfg
}

// Mode returns the parsed ordering mode.
func (c Config) Mode() prqueue.OrderMode {
	m, _ := prqueue.ParseOrderMode(c.OrderMode)
	return m
}

// TaskList materializes the declared task set.
func (c Config) TaskList() []*prqueue.Task {
	tasks := make([]*prqueue.Task, 0, len(c.Tasks))
	for _, spec := range c.Tasks {
		t := prqueue.NewTask(prqueue.TaskID(spec.ID), spec.Priority)
		t.Arrival = spec.Arrival
		t.Deadline = spec.Deadline
		if spec.Payload != nil {
			t.Payload = spec.Payload
		}
		tasks = append(tasks, t)
	}
	return tasks
}
