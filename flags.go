package main

import (
	"github.com/urfave/cli"

	"github.com/andareed/siftly-tuner/config"
)

var (
	configPath string
	debugFile  string
	logLevel   string
	rigHost    string
	rigPort    int
	formatName string
	activeOnly bool
	target     string
	reloadCron string
)

var appFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "config, c",
		Usage:       "path to the YAML config file",
		EnvVar:      "SFTUNE_CONFIG",
		Destination: &configPath,
	},
	cli.StringFlag{
		Name:        "debug",
		Usage:       "write debug logs to `FILE`",
		Destination: &debugFile,
	},
	cli.StringFlag{
		Name:        "log-level",
		Usage:       "debug, info, warn or error",
		Destination: &logLevel,
	},
	cli.StringFlag{
		Name:        "host",
		Usage:       "flrig XML-RPC host",
		EnvVar:      "SFTUNE_HOST",
		Destination: &rigHost,
	},
	cli.IntFlag{
		Name:        "port, p",
		Usage:       "flrig XML-RPC port",
		EnvVar:      "SFTUNE_PORT",
		Destination: &rigPort,
	},
	cli.StringFlag{
		Name:        "format, f",
		Usage:       "schedule format: auto, a (eibi) or b (ilg)",
		Destination: &formatName,
	},
	cli.BoolFlag{
		Name:        "active-only, a",
		Usage:       "load only broadcasts on the air at load time",
		Destination: &activeOnly,
	},
	cli.StringFlag{
		Name:        "target, t",
		Usage:       "load only broadcasts whose target area contains `TEXT`",
		Destination: &target,
	},
	cli.StringFlag{
		Name:        "reload",
		Usage:       "cron spec for re-reading the schedule, e.g. \"*/15 * * * *\"",
		Destination: &reloadCron,
	},
}

// applyFlags overrides the config with every flag set on the command line.
func applyFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet("debug") {
		cfg.Log.File = debugFile
		if !ctx.IsSet("log-level") {
			cfg.Log.Level = "debug"
		}
	}
	if ctx.IsSet("log-level") {
		cfg.Log.Level = logLevel
	}
	if ctx.IsSet("host") {
		cfg.Tuner.Host = rigHost
	}
	if ctx.IsSet("port") {
		cfg.Tuner.Port = rigPort
	}
	if ctx.IsSet("format") {
		cfg.Schedule.Format = formatName
	}
	if ctx.IsSet("active-only") {
		cfg.Schedule.ActiveOnly = activeOnly
	}
	if ctx.IsSet("target") {
		cfg.Schedule.Target = target
	}
	if ctx.IsSet("reload") {
		cfg.Refresh.ReloadCron = reloadCron
	}
	cfg.Normalize()
}
