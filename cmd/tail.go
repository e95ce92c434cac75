package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tracelog/config"
	"tracelog/follow"
	"tracelog/session"
)

// TailCmd prints a trace file.
type TailCmd struct {
	Path   string `arg:"" optional:"" help:"Trace file (default: the last file written by demo)" type:"path"`
	Follow bool   `short:"f" help:"Keep printing data appended to the file until interrupted"`
	Color  bool   `help:"Highlight delimiter and level lines"`
}

// Run implements the tail command execution
func (t *TailCmd) Run(cli *CLI) error {
	cfg, err := cli.Config()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	path, err := resolveTailPath(t.Path)
	if err != nil {
		return err
	}

	opts := t.options(cfg)
	if !t.Follow {
		return tailOnce(stdout, path, opts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return follow.New(path, stdout, opts).Run(ctx)
}

func (t *TailCmd) options(cfg *config.Config) follow.Options {
	opts := follow.Options{PollInterval: cfg.Follow.PollInterval}
	if t.Color || cfg.Follow.Color {
		opts.Styler = follow.NewStyler()
	}
	return opts
}

func resolveTailPath(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	last, err := session.LoadLast()
	if errors.Is(err, session.ErrNotFound) {
		return "", fmt.Errorf("no trace file recorded yet; run demo with --file or pass a path")
	}
	if err != nil {
		return "", err
	}
	session.Debugf("tail: using last trace %s", last.TracePath)
	return last.TracePath, nil
}

// tailOnce prints the trace at path to out.
func tailOnce(out io.Writer, path string, opts follow.Options) error {
	f := follow.New(path, out, opts)
	if _, err := f.ReadNew(); err != nil {
		return err
	}
	return f.Flush()
}
