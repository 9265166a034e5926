package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/postman/config"
)

// newLogger builds the command logger: JSON when asked for, otherwise text
// with colors only on a terminal.
func newLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	if lvl, err := cfg.Level(); err == nil {
		l.SetLevel(lvl)
	}

	if cfg.LogFormat == config.LogJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
		return l
	}
	tty := isTerminal(w)
	l.SetFormatter(&logrus.TextFormatter{
		ForceColors:   tty,
		DisableColors: !tty,
		FullTimestamp: true,
	})

	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
