package providers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"studynexus/internal/structures"
	"time"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeLedger
	TypeAI
)

var logFiles = map[TypeEnum]string{
	TypeApp:    "app.log",
	TypeGet:    "get.log",
	TypePost:   "post.log",
	TypeLedger: "ledger.log",
	TypeAI:     "ai.log",
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}
	zerolog.TimeFieldFormat = time.RFC3339

	lp := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger, len(logFiles))}
	for t, name := range logFiles {
		f, err := os.OpenFile(filepath.Join(conf.Logger.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(conf.Logger.Mode))
		if err != nil {
			lp.Close()
			return nil, fmt.Errorf("unable to open log file %s: %w", name, err)
		}
		lp.files = append(lp.files, f)

		var w io.Writer = f
		if conf.Debug {
			w = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly})
		}
		lp.loggers[t] = zerolog.New(w).Level(level).With().Timestamp().Str("channel", name).Logger()
	}
	return lp, nil
}

func (lp *LogProvider) get(t TypeEnum) *zerolog.Logger {
	l, ok := lp.loggers[t]
	if !ok {
		l = lp.loggers[TypeApp]
	}
	return &l
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.get(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	for _, f := range lp.files {
		_ = f.Close()
	}
	lp.files = nil
}
