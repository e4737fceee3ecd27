package ecs

import "github.com/rs/zerolog"

// SystemLogger is the per-system structured-logging port systems bind as a
// parameter, mirroring the source scheduler's injectable Logger interface
// (context.Logger().With(key, value)) without forcing every system to
// import zerolog directly. It is invisible to Access, the same as Commands
// and Local, since logging is a side channel rather than a data dependency
// between systems.
type SystemLogger struct {
	logger zerolog.Logger
}

// With returns a scoped copy of the logger carrying an extra key/value
// pair on every subsequent line, the Go stand-in for the source's
// per-work-group/per-system logger scoping.
func (l *SystemLogger) With(key string, value any) SystemLogger {
	return SystemLogger{logger: l.logger.With().Interface(key, value).Logger()}
}

func (l *SystemLogger) Debug(msg string) { l.logger.Debug().Msg(msg) }
func (l *SystemLogger) Info(msg string)  { l.logger.Info().Msg(msg) }
func (l *SystemLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

func (l *SystemLogger) access() Access { return Access{} }

func (l *SystemLogger) paramInit(world *World) error {
	base, ok := GetResource[zerolog.Logger](world.Resources)
	if !ok {
		nop := zerolog.Nop()
		base = &nop
	}
	l.logger = *base
	return nil
}
