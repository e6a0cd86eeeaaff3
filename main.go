package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/andareed/siftly-tuner/config"
	"github.com/andareed/siftly-tuner/logging"
	"github.com/andareed/siftly-tuner/schedule"
	"github.com/andareed/siftly-tuner/tuner"
)

var Version = "dev"

func main() {
	app := cli.NewApp()
	app.Name = "sftune"
	app.HelpName = "sftune"
	app.Usage = "follow a shortwave receiver through an EIBI or ILG broadcast schedule"
	app.UsageText = "sftune [options] <schedule.txt>"
	app.Version = Version
	app.Flags = appFlags
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(ctx, cfg)

	cleanup, err := logging.SetupLogging(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer cleanup()
	logging.Infof("siftly-tuner %s: started (config %s)", Version, path)

	file := ctx.Args().First()
	if file == "" {
		file = cfg.Schedule.File
	}
	if file == "" {
		_ = cli.ShowAppHelp(ctx)
		return errors.New("no schedule file given")
	}

	fs := afero.NewOsFs()
	repo := schedule.NewRepository(fs)
	format := schedule.FormatByName(cfg.Schedule.Format) // nil for "auto"
	filters := schedule.Filters{ActiveOnly: cfg.Schedule.ActiveOnly, Target: cfg.Schedule.Target}
	if err := repo.Load(file, format, filters); err != nil {
		return err
	}

	rig := tuner.NewFlrig(cfg.Tuner.Addr(), cfg.Tuner.Timeout)
	logging.Infof("tuner: flrig at %s", rig.URL())

	m := newModel(repo, rig, fs, format, cfg.Refresh.Interval)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if spec := cfg.Refresh.ReloadCron; spec != "" {
		c, err := newReloader(spec, p.Send)
		if err != nil {
			return err
		}
		c.Start()
		defer c.Stop()
		logging.Infof("reload: scheduled %q", spec)
	}

	if _, err := p.Run(); err != nil {
		logging.Errorf("tea program error: %v", err)
		return err
	}
	return nil
}
