package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/numseq/monitoring"
	"github.com/sarchlab/numseq/recording"
	"github.com/sarchlab/numseq/seq"
	"github.com/sarchlab/numseq/tracing"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted sequence session.",
	Long: `demo creates a bounded sequence, runs a scripted series of ` +
		`mutations (push, merge, cut, reverse, sort), and prints the ` +
		`verbose description of the result. Flags attach an operation ` +
		`logger, CSV or SQLite tracers, and a live monitoring server. ` +
		`Flag defaults can be set in a .env file.`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().Int("capacity", 8,
		"capacity of the demo sequence (env NUMSEQ_CAPACITY)")
	demoCmd.Flags().Bool("log", false,
		"log every operation to stderr")
	demoCmd.Flags().String("csv", "",
		"write an operation trace to this CSV file")
	demoCmd.Flags().String("db", "",
		"write an operation trace to a SQLite database at this path")
	demoCmd.Flags().Bool("monitor", false,
		"start a monitoring server and keep the process alive")
	demoCmd.Flags().Int("port", 0,
		"port of the monitoring server (env NUMSEQ_MONITOR_PORT)")
	demoCmd.Flags().Bool("open", false,
		"open the monitoring dashboard in a browser")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) {
	loadDotEnv()

	s, err := seq.New("Demo", intFlag(cmd, "capacity", "NUMSEQ_CAPACITY"))
	if err != nil {
		log.Fatalf("Error creating sequence: %v", err)
	}

	attachObservers(cmd, s)

	runScript(s)

	fmt.Print(s.Describe(true))

	if mustBool(cmd, "monitor") {
		select {}
	}
}

func loadDotEnv() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func attachObservers(cmd *cobra.Command, s *seq.Sequence) {
	if mustBool(cmd, "log") {
		s.AcceptHook(seq.NewOpLogger(log.New(os.Stderr, "", 0)))
	}

	if path := mustString(cmd, "csv"); path != "" {
		backend := tracing.NewCSVTracerBackend(path)
		backend.Init()
		tracing.CollectOps(s, backend)
	}

	if path := mustString(cmd, "db"); path != "" {
		tracer := tracing.NewDBTracer(recording.New(path))
		tracing.CollectOps(s, tracer)
	}

	if mustBool(cmd, "monitor") || mustBool(cmd, "open") {
		monitor := monitoring.NewMonitor().
			WithPortNumber(intFlag(cmd, "port", "NUMSEQ_MONITOR_PORT"))
		monitor.RegisterSequence(s)
		monitor.StartServer()

		if mustBool(cmd, "open") {
			monitor.OpenDashboard()
		}
	}
}

func runScript(s *seq.Sequence) {
	for _, v := range []float64{3, 1, 4} {
		if err := s.Push(v); err != nil {
			log.Fatalf("Error pushing %v: %v", v, err)
		}
	}

	if _, err := s.Merge([]float64{1, 5, 9, 2, 6}); err != nil {
		log.Fatalf("Error merging: %v", err)
	}

	if err := s.Cut(1, 3); err != nil {
		log.Fatalf("Error cutting: %v", err)
	}

	s.Reverse()

	duration := s.Sort()
	fmt.Printf("Sorted in %v\n", duration)
}

func intFlag(cmd *cobra.Command, name, envName string) int {
	if envValue := os.Getenv(envName); envValue != "" &&
		!cmd.Flags().Changed(name) {
		value, err := strconv.Atoi(envValue)
		if err != nil {
			log.Fatalf("Error parsing %s: %v", envName, err)
		}

		return value
	}

	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(err)
	}

	return value
}

func mustBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(err)
	}

	return value
}

func mustString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(err)
	}

	return value
}
