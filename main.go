package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cbrennan/dplls/internal/dimacsio"
	"github.com/cbrennan/dplls/internal/sat"
)

var (
	flagDecay = flag.Int64(
		"decay",
		sat.DefaultDecayPeriod,
		"conflicts between activity decays",
	)

	flagSilent = flag.Bool(
		"silent",
		false,
		"suppress the decisions/conflicts/prop-rate counters line",
	)

	flagCPUProfile = flag.Bool(
		"cpuprof",
		false,
		"save pprof CPU profile in cpuprof",
	)

	flagMemProfile = flag.Bool(
		"memprof",
		false,
		"save pprof memory profile in memprof",
	)
)

type config struct {
	instanceFile string
	decay        int64
	silent       bool
	memProfile   bool
	cpuProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		decay:        *flagDecay,
		silent:       *flagSilent,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
	}, nil
}

// run loads the instance, solves it, and reports the outcome. On SAT and
// UNSAT it returns the process exit code to use rather than calling os.Exit
// itself, so that the memory-profile write in main happens before the
// process ends. A model-check failure instead ends the process at once
// through log.Fatalf (exit code 1).
func run(cfg *config) (int, error) {
	cs, err := dimacsio.LoadClauseStore(cfg.instanceFile)
	if err != nil {
		return 0, fmt.Errorf("could not parse instance: %s", err)
	}

	s := sat.NewSolver(cs, sat.Options{DecayPeriod: cfg.decay})

	fmt.Printf("c variables:  %d\n", cs.VariableCount())
	fmt.Printf("c clauses:    %d\n", cs.ClauseCount())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	if !cfg.silent {
		fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.Conflicts(), float64(s.Conflicts())/elapsed.Seconds())
		fmt.Printf("c prop rate:  %.2f\n", s.PropagationRate())
	}

	// The final line is the contractual result: a bare SATISFIABLE or
	// UNSATISFIABLE, optionally followed on the same line by
	// comma-separated decision/propagation counters.
	switch status {
	case sat.Satisfiable:
		printResultLine(status.String(), cfg.silent, s.Decisions, s.Propagations)
		return 20, nil
	case sat.Unsatisfiable:
		printResultLine(status.String(), cfg.silent, s.Decisions, s.Propagations)
		return 10, nil
	default:
		// ModelCheckFailed is a solver-defect path, never an expected
		// outcome of a correct input.
		log.Fatalf("model check failed: solver reported %s", status)
		return 1, nil
	}
}

func printResultLine(result string, silent bool, decisions, propagations int64) {
	if silent {
		fmt.Println(result)
		return
	}
	fmt.Printf("%s,%d,%d\n", result, decisions, propagations)
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	code, err := run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	// os.Exit skips deferred calls, so the CPU profile is flushed here.
	pprof.StopCPUProfile()
	os.Exit(code)
}
