package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// DatabaseLogger implements Logger interface with database persistence.
// Every entry is logged through zap first; persistence failures are reported
// but never fail the original log operation.
type DatabaseLogger struct {
	zapLogger  *zap.Logger
	component  string
	context    map[string]interface{}
	repository LogRepository
}

// NewDatabaseLogger creates a new DatabaseLogger at info level
func NewDatabaseLogger(component string, repository LogRepository) *DatabaseLogger {
	return NewDatabaseLoggerWithLevel(component, repository, "info")
}

// NewDatabaseLoggerWithLevel creates a new DatabaseLogger at the configured
// level
func NewDatabaseLoggerWithLevel(component string, repository LogRepository, level string) *DatabaseLogger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(ParseLevel(level))

	logger, err := config.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	return &DatabaseLogger{
		zapLogger:  logger,
		component:  component,
		context:    make(map[string]interface{}),
		repository: repository,
	}
}

// Info logs an info message
func (d *DatabaseLogger) Info(msg string, fields map[string]interface{}) {
	d.zapLogger.Info(fmt.Sprintf("[%s] %s", d.component, msg), d.buildZapFields(fields)...)
	d.persist("INFO", msg, "", fields)
}

// Error logs an error message
func (d *DatabaseLogger) Error(msg string, err error, fields map[string]interface{}) {
	zapFields := d.buildZapFields(fields)
	errorStr := ""
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
		errorStr = err.Error()
	}
	d.zapLogger.Error(fmt.Sprintf("[%s] %s", d.component, msg), zapFields...)
	d.persist("ERROR", msg, errorStr, fields)
}

// Warn logs a warning message
func (d *DatabaseLogger) Warn(msg string, fields map[string]interface{}) {
	d.zapLogger.Warn(fmt.Sprintf("[%s] %s", d.component, msg), d.buildZapFields(fields)...)
	d.persist("WARN", msg, "", fields)
}

// Debug logs a debug message. Debug entries are not persisted.
func (d *DatabaseLogger) Debug(msg string, fields map[string]interface{}) {
	d.zapLogger.Debug(fmt.Sprintf("[%s] %s", d.component, msg), d.buildZapFields(fields)...)
}

// WithContext creates a new logger with additional context
func (d *DatabaseLogger) WithContext(ctx map[string]interface{}) Logger {
	newContext := make(map[string]interface{})
	for k, v := range d.context {
		newContext[k] = v
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &DatabaseLogger{
		zapLogger:  d.zapLogger,
		component:  d.component,
		context:    newContext,
		repository: d.repository,
	}
}

func (d *DatabaseLogger) persist(level, message, errorStr string, fields map[string]interface{}) {
	if d.repository == nil {
		return
	}

	allFields := make(map[string]interface{})
	for k, v := range d.context {
		allFields[k] = v
	}
	for k, v := range fields {
		allFields[k] = v
	}

	entry := LogEntry{
		Component: d.component,
		Level:     level,
		Message:   message,
		Error:     errorStr,
		Fields:    allFields,
	}
	if err := d.repository.SaveLog(entry); err != nil {
		d.zapLogger.Error("Failed to save log to database", zap.Error(err))
	}
}

// buildZapFields converts map fields to zap fields
func (d *DatabaseLogger) buildZapFields(fields map[string]interface{}) []zap.Field {
	var zapFields []zap.Field

	for k, v := range d.context {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}
