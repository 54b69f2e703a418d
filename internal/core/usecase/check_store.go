package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/port"
)

type CheckStoreUseCase struct {
	store port.PropertyStorePort
}

func NewCheckStoreUseCase(store port.PropertyStorePort) *CheckStoreUseCase {
	return &CheckStoreUseCase{store: store}
}

// Execute делает пробный запрос и сообщает, доступно ли хранилище.
func (uc *CheckStoreUseCase) Execute(ctx context.Context) bool {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CheckStore"})

	if err := uc.store.Ping(ctx); err != nil {
		ucLogger.Warn("Store ping failed", port.Fields{"error": err.Error()})
		return false
	}

	ucLogger.Debug("Store ping succeeded", nil)
	return true
}
