package cmd

import (
	"fmt"
	"io"

	"tracelog/debuglog"
	"tracelog/demo"
	"tracelog/session"
	"tracelog/store"
)

// DemoCmd runs one of the demo algorithms with tracing enabled.
type DemoCmd struct {
	Algorithm string `arg:"" help:"Algorithm to trace (factorial|fibonacci|hanoi)"`
	N         int    `name:"n" short:"n" default:"5" help:"Input size"`
	File      string `name:"file" help:"Write the trace to this file instead of stderr (default: trace_file from config)" type:"path"`
	ASCII     bool   `name:"ascii" help:"Frame the trace with ASCII characters"`
	NoRecord  bool   `name:"no-record" help:"Do not store the run in the history database"`
}

// Run implements the demo command execution
func (d *DemoCmd) Run(cli *CLI) error {
	cfg, err := cli.Config()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	name, err := validateAlgorithm(d.Algorithm)
	if err != nil {
		return err
	}
	if err := validateSize(name, d.N); err != nil {
		return err
	}

	tracePath := d.File
	if tracePath == "" {
		tracePath = cfg.TraceFile
	}
	tracePath, err = validateTracePath(tracePath)
	if err != nil {
		return err
	}

	job := demoJob{
		Algorithm: name,
		N:         d.N,
		TracePath: tracePath,
		ASCII:     d.ASCII || cfg.ASCII,
		Record:    !d.NoRecord,
	}
	return job.run(stdout, debuglog.Default())
}

type demoJob struct {
	Algorithm string
	N         int
	TracePath string
	ASCII     bool
	Record    bool
}

// run traces the algorithm through log, prints the result to out and
// records the run.
func (j demoJob) run(out io.Writer, log *debuglog.Logger) error {
	if j.ASCII {
		log.SetToAscii()
	}
	run := store.NewRun(j.Algorithm, j.N, j.TracePath, j.ASCII)
	session.Debugf("demo: run %s %s(%d) trace=%q", run.ID, j.Algorithm, j.N, j.TracePath)

	if j.TracePath != "" {
		if err := log.SetFileAndDebugOn(j.TracePath); err != nil {
			log.DebugOff()
			return err
		}
	} else {
		log.DebugOn()
	}

	result, err := demo.Run(log, j.Algorithm, j.N)
	closeErr := log.CloseFileAndDebugOff()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}
	run.Finish(result, log.Lines())

	fmt.Fprintln(out, result)

	if j.Record {
		db, err := store.InitDatabase()
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()
		if err := store.RecordRun(db, run); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
	}

	if j.TracePath != "" {
		if err := session.SaveLast(j.TracePath, run.ID); err != nil {
			return fmt.Errorf("failed to remember trace file: %w", err)
		}
	}
	return nil
}
