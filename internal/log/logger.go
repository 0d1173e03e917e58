package log

import "go.uber.org/zap"

type Logger interface {
	Debug(msg string, keyAndValues ...any)
	Info(msg string, keyAndValues ...any)
	Warn(msg string, keyAndValues ...any)
	Error(msg string, keyAndValues ...any)
	Fatal(msg string, keyAndValues ...any)
}

type ZapLogger struct {
	inner *zap.SugaredLogger
}

func NewZapLogger(log *zap.Logger) ZapLogger {
	return ZapLogger{inner: log.Sugar()}
}

// New builds the process logger. Both configs write to stderr so that stdout
// stays reserved for command output.
func New(debug bool) (ZapLogger, error) {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return ZapLogger{}, err
	}
	return NewZapLogger(zapLogger), nil
}

func (l ZapLogger) Debug(msg string, keyAndValues ...any) {
	l.inner.Debugw(msg, keyAndValues...)
}

func (l ZapLogger) Info(msg string, keyAndValues ...any) {
	l.inner.Infow(msg, keyAndValues...)
}

func (l ZapLogger) Warn(msg string, keyAndValues ...any) {
	l.inner.Warnw(msg, keyAndValues...)
}

func (l ZapLogger) Error(msg string, keyAndValues ...any) {
	l.inner.Errorw(msg, keyAndValues...)
}

func (l ZapLogger) Fatal(msg string, keyAndValues ...any) {
	l.inner.Fatalw(msg, keyAndValues...)
}

func (l ZapLogger) Sync() error {
	return l.inner.Sync()
}
