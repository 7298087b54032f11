package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

func main() {
	var showTimings, verbose bool
	flag.BoolVar(&showTimings, "t", false, "Show time-related metrics")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Printf("Usage: %s [-t] [-v] [table | selftest | pack filename | unpack filename]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		panic("cannot initialize zap logger: " + err.Error())
	}
	defer zl.Sync()
	logger := zl.Sugar()

	// library packages log through slog, routed onto the same zap core
	blockLogger := slog.New(zapslog.NewHandler(zl.Core()))

	var start time.Time
	if showTimings {
		start = time.Now()
	}

	args := flag.Args()
	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	status := 0
	switch command {
	case "":
		selfTest(os.Stdout)
		if err := repl(os.Stdin, os.Stdout); err != nil {
			logger.Errorw("failed to read input", "error", err)
			status = 1
		}
	case "table":
		printTable(os.Stdout)
	case "selftest":
		if selfTest(os.Stdout) > 0 {
			status = 1
		}
	case "pack", "unpack":
		if len(args) != 2 {
			flag.Usage()
		}
		if command == "pack" {
			err = pack(args[1], blockLogger, logger)
		} else {
			err = unpack(args[1], os.Stdout, blockLogger)
		}
		if err != nil {
			logger.Errorw("command failed", "command", command, "error", err)
			status = 1
		}
	default:
		flag.Usage()
	}

	if showTimings {
		logger.Infof("Total execution time: %s", time.Since(start))
	}

	if status != 0 {
		zl.Sync()
		os.Exit(status)
	}
}
