package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config logger seçenekleri.
type Config struct {
	Env   string // development -> okunabilir konsol; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger enjeksiyon ve tutarlılık için zerolog sarmalayıcısı.
type Logger struct {
	zl zerolog.Logger
}

// New yapılandırılmış logger kurar. Development'ta okunabilir çıktı,
// production'da JSON kullanılır.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Global zerolog'u da yönlendir; onu kullanan kütüphaneler aynı çıktıya yazar
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace, Debug, Info, Warn, Error zerolog'a delege edilir.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With sabit alanlı bir alt logger başlatır.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog doğrudan API gerektiğinde iç logger'ı döner.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
