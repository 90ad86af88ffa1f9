// meshtool is a CLI utility for inspecting, optimizing and picking meshes.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshkit/internal/config"
	"github.com/Faultbox/meshkit/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(config.Args(), cfg, os.Stdout); err != nil {
		logger.Error("command failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches one command. Output meant for the user goes to out.
func run(args []string, cfg *config.Config, out io.Writer) error {
	if len(args) < 1 {
		printUsage(out)
		return errUsage
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		return cmdInfo(args, out)
	case "optimize", "opt":
		return cmdOptimize(args, cfg, out)
	case "box":
		return cmdBox(args, out)
	case "pick":
		return cmdPick(args, cfg, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, `meshtool - triangle mesh inspection and optimization

Usage:
  meshtool [flags] <command> [options]

Commands:
  info <mesh.yaml>                    Show counts, bounds and problems
  optimize <mesh.yaml> [out.yaml]     Optimize for rendering and list model parts
  box [options] [out.yaml]            Write a box mesh
  pick [options] <mesh.yaml> <x> <y>  Report the model part under a screen pixel

Flags:
  -config <path>      Config file (default ./meshtool.yaml or user config dir)
  -debug              Debug logging
  -log-file <path>    Also log to a rotating file
  -edge-angle <deg>   Weld edge angle tolerance
  -tolerance <dist>   Weld distance
  -no-weld            Skip welding

Examples:
  meshtool box -size 2 cube.yaml
  meshtool -edge-angle 180 optimize cube.yaml smooth.yaml
  meshtool pick -yaw 0.5 cube.yaml 640 360`)
}
