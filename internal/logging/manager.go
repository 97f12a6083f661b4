package logging

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// LoggerManager хранит по одному логгеру на компонент симуляции
type LoggerManager struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

var (
	globalManager     *LoggerManager
	globalManagerOnce sync.Once
)

// GetLoggerManager возвращает общий для процесса менеджер
func GetLoggerManager() *LoggerManager {
	globalManagerOnce.Do(func() {
		globalManager = &LoggerManager{loggers: make(map[string]*Logger)}
	})
	return globalManager
}

// GetLogger возвращает логгер компонента; первый вызов создаёт его с
// текущими настройками Configure
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if l, ok := lm.loggers[component]; ok {
		return l, nil
	}
	l, err := NewLogger(component)
	if err != nil {
		return nil, fmt.Errorf("логгер %s: %w", component, err)
	}
	lm.loggers[component] = l
	return l, nil
}

// MustGetLogger не возвращает ошибок: если файл не открылся, компонент
// пишет только в консоль
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	l, err := lm.GetLogger(component)
	if err == nil {
		return l
	}
	defaultLogger.Warn("%v; %s пишет только в консоль", err, component)
	return newConsoleLogger(component, defaultLogger.consoleLogger.Writer())
}

// ListComponents возвращает имена компонентов в алфавитном порядке
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	names := make([]string, 0, len(lm.loggers))
	for name := range lm.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetLogLevel меняет пороги уже созданного логгера компонента
func (lm *LoggerManager) SetLogLevel(component string, console, file LogLevel) error {
	lm.mu.Lock()
	l, ok := lm.loggers[component]
	lm.mu.Unlock()

	if !ok {
		return fmt.Errorf("логгер %s не создан", component)
	}
	l.setLevels(console, file)
	return nil
}

// SetAllLevels меняет пороги всех созданных логгеров
func (lm *LoggerManager) SetAllLevels(console, file LogLevel) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	for _, l := range lm.loggers {
		l.setLevels(console, file)
	}
}

// CloseAll закрывает файлы всех логгеров и забывает их
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var errs []error
	for name, l := range lm.loggers {
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("закрытие логгера %s: %w", name, err))
		}
	}
	lm.loggers = make(map[string]*Logger)
	return errors.Join(errs...)
}

func (l *Logger) setLevels(console, file LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.minConsoleLevel = console
	if l.fileLogger != nil {
		l.minFileLevel = file
	}
}

// GetComponentLogger возвращает логгер компонента из общего менеджера
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}

// GetWorldLogger - генерация и стриминг чанков
func GetWorldLogger() *Logger { return GetComponentLogger("world") }

// GetEntityLogger - движок сущностей
func GetEntityLogger() *Logger { return GetComponentLogger("entity") }

// GetGameLogger - игровой цикл и игрок
func GetGameLogger() *Logger { return GetComponentLogger("game") }

// GetMetricsLogger - сбор метрик
func GetMetricsLogger() *Logger { return GetComponentLogger("metrics") }
