package main

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bigspawn/kodi-bingebase-sync/internal/config"
	"github.com/bigspawn/kodi-bingebase-sync/internal/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the process logger. With a log file configured, output
// goes to both stdout and a rotated file, without colors.
func newLogger(cfg config.LogConfig, verbose bool) (*logger.Logger, io.Closer) {
	l := logger.New(verbose)
	if cfg.File == "" {
		return l, nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	l.SetOutput(io.MultiWriter(os.Stdout, file))
	l.SetFlags(log.LstdFlags)
	return l, file
}
