package logging

import (
	"sync"
)

// DefaultLoggerFactory implements LoggerFactory using zap loggers
type DefaultLoggerFactory struct {
	level   string
	loggers map[string]Logger
	mu      sync.RWMutex
}

// NewLoggerFactory creates a new logger factory at info level
func NewLoggerFactory() LoggerFactory {
	return NewLoggerFactoryWithLevel("info")
}

// NewLoggerFactoryWithLevel creates a factory whose loggers emit at the
// configured level
func NewLoggerFactoryWithLevel(level string) LoggerFactory {
	return &DefaultLoggerFactory{
		level:   level,
		loggers: make(map[string]Logger),
	}
}

// CreateLogger returns the cached logger for the component, creating it on
// first use.
func (f *DefaultLoggerFactory) CreateLogger(component string) Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if logger, exists := f.loggers[component]; exists {
		return logger
	}

	logger := NewZapLoggerWithLevel(component, f.level)
	f.loggers[component] = logger
	return logger
}

// DatabaseLoggerFactory implements LoggerFactory with database persistence
type DatabaseLoggerFactory struct {
	repository LogRepository
	level      string
	loggers    map[string]Logger
	mu         sync.RWMutex
}

// NewDatabaseLoggerFactory creates a factory whose loggers persist entries
// through the given repository and emit at the configured level.
func NewDatabaseLoggerFactory(repository LogRepository, level string) LoggerFactory {
	return &DatabaseLoggerFactory{
		repository: repository,
		level:      level,
		loggers:    make(map[string]Logger),
	}
}

// CreateLogger returns the cached database logger for the component
func (f *DatabaseLoggerFactory) CreateLogger(component string) Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if logger, exists := f.loggers[component]; exists {
		return logger
	}

	logger := NewDatabaseLoggerWithLevel(component, f.repository, f.level)
	f.loggers[component] = logger
	return logger
}

var (
	globalFactory   LoggerFactory
	globalFactoryMu sync.RWMutex
)

// SetGlobalLoggerFactory sets the process-wide logger factory
func SetGlobalLoggerFactory(factory LoggerFactory) {
	globalFactoryMu.Lock()
	defer globalFactoryMu.Unlock()
	globalFactory = factory
}

// GetGlobalLoggerFactory returns the process-wide logger factory, falling
// back to a plain zap factory when none has been set.
func GetGlobalLoggerFactory() LoggerFactory {
	globalFactoryMu.RLock()
	defer globalFactoryMu.RUnlock()

	if globalFactory == nil {
		return NewLoggerFactory()
	}
	return globalFactory
}
