// SPDX-License-Identifier: MIT

// Command lvmath resolves a YAML scene description and prints world-space
// transforms and colors.
//
// Usage:
//
//	lvmath -file scene.yaml [-log-level info] [-eps 0.001]
//
// With -file - (the default) the document is read from stdin. Exit status
// is 0 on success, 1 when the scene fails to load or resolve, and 2 on bad
// flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmath/internal/scene"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvmath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "-", "scene YAML file, - for stdin")
	level := fs.String("log-level", "info", "log level: debug, info, warn, error")
	eps := fs.Float64("eps", 0, "comparison epsilon, overrides the document when > 0")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log, err := newLogger(*level)
	if err != nil {
		fmt.Fprintln(stderr, "lvmath:", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	if err := resolveScene(ctx, log, *file, *eps, stdin, stdout); err != nil {
		log.Error("scene failed", zap.String("file", *file), zap.Error(err))
		return exitFail
	}
	return exitOK
}

func resolveScene(ctx context.Context, log *zap.Logger, file string, eps float64, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	doc, err := scene.LoadYAML(in)
	if err != nil {
		return err
	}
	if eps > 0 {
		doc.Epsilon = eps
	}

	res, err := doc.Resolve(ctx, log.Named("scene"))
	if err != nil {
		return err
	}
	return res.Write(stdout)
}

// newLogger builds a JSON production logger on stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	config := zap.Config{
		Level:            lvl,
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}
