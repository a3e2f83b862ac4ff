package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type operationIDKeyType struct{}

var operationIDKey = operationIDKeyType{}

// NewOperationContext кладет в контекст идентификатор операции.
// Пустой id заменяется сгенерированным.
func NewOperationContext(ctx context.Context, id string) context.Context {
	if id == "" {
		id = GenerateOperationID()
	}
	return context.WithValue(ctx, operationIDKey, id)
}

// GetOperationID извлекает идентификатор операции из контекста.
func GetOperationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(operationIDKey).(string)
	return id, ok
}

// GenerateOperationID генерирует новый идентификатор операции.
func GenerateOperationID() string {
	return uuid.New().String()
}

// WithOperationID возвращает копию логгера с полем operation_id,
// либо тот же логгер, если в контексте идентификатора нет.
func (l *Logger) WithOperationID(ctx context.Context) *Logger {
	if id, ok := GetOperationID(ctx); ok {
		return l.With(zap.String(OperationID, id))
	}
	return l
}
