package usecase

import (
	"context"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
)

const (
	fallbackClientName   = "Cliente"
	fallbackProviderName = "Proveedor"
	fallbackReviewerName = "Anónimo"
)

// lookupUser returns the stored profile, or nil when the user has none yet.
func lookupUser(ctx context.Context, repo repository.UserRepository, uid string) (*entity.User, error) {
	user, err := repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
