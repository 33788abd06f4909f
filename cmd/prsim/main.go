package main

import (
	"fmt"
	"math/rand"

	"prsim/internal/heapsort"
	"prsim/internal/prqueue"
	"prsim/internal/sim"
)

func main() {
	// Read the configuration
	cfg := sim.Load("config.yml")

	tasks := cfg.TaskList()
	if len(tasks) == 0 {
		tasks = demoTasks()
	}

	fmt.Println("=== Priority Scheduling Simulation ===")
	fmt.Println("\nCreated tasks:")
	for _, t := range tasks {
		fmt.Printf("  Task %s: priority=%d, arrival=%d, deadline=%d\n",
			t.ID, t.Priority, t.Arrival, t.Deadline)
	}

	s := sim.New(cfg.Mode())
	if cfg.TraceCSV != "" {
		if err := s.EnableCSVTrace(cfg.TraceCSV); err != nil {
			fmt.Println("CSV trace disabled:", err)
		}
	}
	defer s.Close()

	fmt.Println("\n--- Starting Scheduler Simulation ---")
	timeline, err := s.Run(tasks)
	if err != nil {
		fmt.Println("simulation failed:", err)
		return
	}

	fmt.Println("\n--- Scheduler Timeline ---")
	for _, e := range timeline {
		fmt.Printf("At time %d: executing task %s (priority=%d)\n",
			e.Time, e.Task.ID, e.Task.Priority)
	}

	fmt.Println("\n=== Heapsort Demonstration ===")
	data := make([]int, 20)
	for i := range data {
		data[i] = rand.Intn(101)
	}
	fmt.Println("Original data:", data)
	fmt.Println("Sorted data:  ", heapsort.Sort(data))

	fmt.Println("\nSimulation complete.")
}

// demoTasks is the fallback task set used when the config declares none.
func demoTasks() []*prqueue.Task {
	specs := []struct {
		id                string
		priority          int
		arrival, deadline int64
	}{
		{"A", 3, 0, 5},
		{"B", 5, 1, 3},
		{"C", 1, 2, 6},
		{"D", 4, 0, 4},
	}

	tasks := make([]*prqueue.Task, 0, len(specs))
	for _, s := range specs {
		t := prqueue.NewTask(prqueue.TaskID(s.id), s.priority)
		t.Arrival = s.arrival
		t.Deadline = s.deadline
		tasks = append(tasks, t)
	}
	return tasks
}
