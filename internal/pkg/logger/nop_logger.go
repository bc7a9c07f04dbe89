package logger

import "go.uber.org/zap"

// NopLogger discards everything. Handy for tests and tools that construct
// services without caring about log output.
type NopLogger struct {
	logger *zap.Logger
}

func NewNopLogger() *NopLogger {
	return &NopLogger{logger: zap.NewNop()}
}

func (l *NopLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *NopLogger) Info(module, message string, details map[string]interface{})  {}
func (l *NopLogger) Warn(module, message string, details map[string]interface{})  {}
func (l *NopLogger) Error(module, message string, details map[string]interface{}) {}

func (l *NopLogger) Sync() error {
	return l.logger.Sync()
}
