// gizmotool is a CLI utility for inspecting debug shape geometry.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gizmo/internal/config"
	"github.com/Faultbox/midgard-gizmo/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]
	logger.Debug("running command", zap.String("command", command), zap.Strings("args", args))

	out := newPrinter(os.Stdout, cfg.Output)

	switch command {
	case "shapes":
		err = cmdShapes(out)
	case "points", "pts":
		err = cmdPoints(cfg, out, args)
	case "draw":
		err = cmdDraw(cfg, out, args)
	case "config":
		err = cmdConfig(cfg, os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gizmotool - debug shape geometry utility

Usage:
  gizmotool [global flags] <command> [options]

Commands:
  shapes                          Print canonical point and edge tables
  points <shape> [options]        Print transformed points of one shape
                                  (cube, quad, marker, polygon)
  draw [options] <scene.yaml>     Replay a scene and print its line segments
  config show                     Print the effective configuration
  config save [path]              Write the effective configuration

Draw options:
  -frames <n>       Print n frames, aging lines between them
  -dt <d>           Time between frames (default: longest duration / (n-1))
  -vertices         Print GL_LINES vertex data instead of segments

Global flags:
  -config <path>    Config file (default ./gizmo.yaml)
  -debug            Enable debug logging
  -segments <n>     Points per full circle
  -point-size <f>   Span of point markers
  -color <c>        Default line color (name or #rrggbb)
  -format <f>       Output format: text or yaml

Examples:
  gizmotool shapes
  gizmotool points cube -pos 0,0,0 -size 2,2,2
  gizmotool points polygon -n 6 -diameter 2 -rot 90,0,0
  gizmotool points marker -size 1,2,0.5
  gizmotool -format yaml draw scene.yaml
  gizmotool draw -frames 3 scene.yaml
  gizmotool -segments 64 config save`)
}
