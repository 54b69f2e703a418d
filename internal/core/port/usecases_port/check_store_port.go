package usecases_port

import "context"

type CheckStoreUseCase interface {
	Execute(ctx context.Context) bool
}
