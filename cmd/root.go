package cmd

import (
	"fmt"
	"io"
	"os"

	"tracelog/config"
	"tracelog/session"
	"tracelog/store"

	"github.com/alecthomas/kong"
)

var (
	// Version information - set by version.go
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"

	// stdout receives command results. Trace output never goes here.
	stdout io.Writer = os.Stdout
)

// SetVersionInfo sets the version information
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// CLI represents the command line interface structure using Kong
type CLI struct {
	ConfigPath string `name:"config" help:"Path to config file (default: ~/.config/tracelog/config.yaml)" type:"path"`
	Debug      bool   `help:"Print tracelog's own diagnostics to stderr"`
	DB         string `name:"db" help:"Path to the run history database" type:"path"`

	Demo       DemoCmd    `cmd:"" help:"Run a recursive algorithm with tracing enabled"`
	Tail       TailCmd    `cmd:"" help:"Print a trace file, optionally following appends"`
	History    HistoryCmd `cmd:"" help:"List recorded runs"`
	ConfigShow ConfigCmd  `cmd:"" name:"config" help:"Show the effective configuration"`
	Version    VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command structure
type VersionCmd struct{}

// ConfigCmd represents the config command structure
type ConfigCmd struct{}

// Execute is the main entry point for all commands
func Execute() error {
	cli := &CLI{}

	ctx := kong.Parse(cli,
		kong.Name(config.AppName),
		kong.Description("Trace nested execution to a text stream and inspect the result"),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s, built %s)", appVersion, appCommit, appDate),
		},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	cli.applyDebug()
	return ctx.Run(cli)
}

func (c *CLI) applyDebug() {
	if !c.Debug {
		return
	}
	config.Debug = true
	session.EnableDebug()
}

// Config loads and validates configuration, then points the store and the
// session file at the configured locations. --db wins over database_path.
func (c *CLI) Config() (*config.Config, error) {
	cfg, err := config.GetConfig(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	c.applyPaths(cfg)
	return cfg, nil
}

func (c *CLI) applyPaths(cfg *config.Config) {
	if c.DB != "" {
		cfg.DatabasePath = c.DB
	}
	store.SetDBPath(cfg.DatabasePath)
	session.SetPath(cfg.SessionPath)
	session.Debugf("paths: db=%s session=%s", store.Path(), session.Path())
}

// Run implements the config command execution
func (c *ConfigCmd) Run(cli *CLI) error {
	return ShowSettings(cli)
}

// Run implements the version command execution
func (v *VersionCmd) Run() error {
	fmt.Fprintf(stdout, "%s version %s\n", config.AppName, appVersion)
	fmt.Fprintf(stdout, "commit: %s\n", appCommit)
	fmt.Fprintf(stdout, "built at: %s\n", appDate)
	return nil
}
