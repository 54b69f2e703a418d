package usecase

import (
	"context"
	"listings-service/internal/core/domain"
)

type GetDictionariesUseCase struct{}

func NewGetDictionariesUseCase() *GetDictionariesUseCase {
	return &GetDictionariesUseCase{}
}

func (uc *GetDictionariesUseCase) Execute(ctx context.Context) domain.Dictionaries {
	return domain.DefaultDictionaries()
}
