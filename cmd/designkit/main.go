package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/designkit/internal/config"
	"git.home.luguber.info/inful/designkit/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"designkit.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Output directory override"`
		Watch  bool   `short:"w" help:"Rebuild when sources change"`
	} `cmd:"" help:"Render Markdown sources with design components to HTML"`

	Version struct{} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if CLI.Build.Output != "" {
			cfg.Output = CLI.Build.Output
		}
		if err := runBuild(cfg, CLI.Build.Watch); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("designkit %s (built %s, commit %s)\n",
			version.Version, version.BuildTime, version.GitCommit)
	default:
		_ = ctx.PrintUsage(false)
		os.Exit(1)
	}
}
