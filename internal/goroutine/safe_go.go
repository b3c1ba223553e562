package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

// Logger интерфейс для логирования ошибок
type Logger interface {
	Errorf(format string, args ...interface{})
}

// RecoveryHandler обрабатывает panic в горутинах
type RecoveryHandler struct {
	logger Logger
}

// NewRecoveryHandler создает новый обработчик
func NewRecoveryHandler(logger Logger) *RecoveryHandler {
	return &RecoveryHandler{logger: logger}
}

// Recover перехватывает panic. Вызывается через defer.
func (rh *RecoveryHandler) Recover(name string) {
	if r := recover(); r != nil {
		rh.logger.Errorf("panic в горутине %s: %v\nstack trace:\n%s", name, r, debug.Stack())
	}
}

// SafeGo запускает горутину с обработкой panic
func (rh *RecoveryHandler) SafeGo(name string, fn func()) {
	go func() {
		defer rh.Recover(name)
		fn()
	}()
}

// SafeGoWithContext запускает горутину с контекстом и обработкой panic
func (rh *RecoveryHandler) SafeGoWithContext(ctx context.Context, name string, fn func(context.Context)) {
	go func() {
		defer rh.Recover(name)
		fn(ctx)
	}()
}

// entryLogger пишет в общий logrus логгер.
type entryLogger struct{}

func (entryLogger) Errorf(format string, args ...interface{}) {
	logger.Entry().Errorf(format, args...)
}

// DefaultRecoveryHandler - глобальный обработчик, пишущий в logrus
var DefaultRecoveryHandler = NewRecoveryHandler(entryLogger{})

// SafeGo - упрощенная функция для запуска безопасной горутины
func SafeGo(name string, fn func()) {
	DefaultRecoveryHandler.SafeGo(name, fn)
}

// SafeGoWithContext - упрощенная функция для запуска безопасной горутины с контекстом
func SafeGoWithContext(ctx context.Context, name string, fn func(context.Context)) {
	DefaultRecoveryHandler.SafeGoWithContext(ctx, name, fn)
}
