package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
	"serviya/pkg/logger"
)

type HireUseCase struct {
	hireRepo    repository.HireRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewHireUseCase(
	hireRepo repository.HireRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *HireUseCase {
	return &HireUseCase{
		hireRepo:    hireRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type CreateHireInput struct {
	Message string    `json:"message" validate:"max=2000"`
	Date    time.Time `json:"date" validate:"required"`
}

// CreateHire opens a pending request against a listing. The hire and the
// provider's notification are committed together.
func (uc *HireUseCase) CreateHire(ctx context.Context, listingID, clientID string, input CreateHireInput) (*entity.Hire, error) {
	if input.Date.IsZero() {
		return nil, errors.BadRequest("date is required", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.IsOwnedBy(clientID) {
		return nil, errors.BadRequest("You cannot hire your own service", nil)
	}

	client, err := lookupUser(ctx, uc.userRepo, clientID)
	if err != nil {
		return nil, err
	}
	provider, err := lookupUser(ctx, uc.userRepo, listing.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hire := &entity.Hire{
		ServiceID:    listing.ID,
		ServiceTitle: listing.Title,
		ServicePrice: listing.Price,
		ServiceImage: listing.ImageURL,
		ClientID:     clientID,
		ClientName:   client.Name(fallbackClientName),
		ProviderID:   listing.UserID,
		ProviderName: provider.Name(fallbackProviderName),
		Message:      strings.TrimSpace(input.Message),
		Date:         input.Date,
		Status:       entity.HireStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.hireRepo.Create(ctx, hire, entity.NewHireRequestNotification(hire, now)); err != nil {
		return nil, err
	}

	logger.Info("Hire %s created: client=%s provider=%s service=%s", hire.ID, clientID, hire.ProviderID, listing.ID)
	return hire, nil
}

// UpdateHireStatus moves a hire along its lifecycle. Provider decisions
// notify the client in the same transaction; a client cancellation does not.
func (uc *HireUseCase) UpdateHireStatus(ctx context.Context, hireID, actorID string, status entity.HireStatus) (*entity.Hire, error) {
	hire, err := uc.hireRepo.UpdateStatus(ctx, hireID, func(h *entity.Hire) (*entity.Notification, error) {
		if err := h.CheckTransition(actorID, status); err != nil {
			return nil, transitionError(h, status, err)
		}

		now := time.Now()
		h.Status = status
		h.UpdatedAt = now
		return entity.NewHireStatusNotification(h, status, now), nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Hire %s moved to %s by %s", hireID, status, actorID)
	return hire, nil
}

func transitionError(h *entity.Hire, to entity.HireStatus, err error) error {
	switch {
	case stderrors.Is(err, entity.ErrNotParticipant):
		return errors.Forbidden("You are not part of this hire", err)
	case stderrors.Is(err, entity.ErrWrongRole):
		return errors.Forbidden(fmt.Sprintf("You cannot mark this hire as %s", to), err)
	default:
		return errors.InvalidTransition(fmt.Sprintf("Cannot move hire from %s to %s", h.Status, to), err)
	}
}

func (uc *HireUseCase) GetHire(ctx context.Context, hireID, uid string) (*entity.Hire, error) {
	hire, err := uc.hireRepo.GetByID(ctx, hireID)
	if err != nil {
		return nil, err
	}
	if !hire.IsParty(uid) {
		return nil, errors.Forbidden("You are not part of this hire", nil)
	}
	return hire, nil
}

func (uc *HireUseCase) ListClientHires(ctx context.Context, clientID string, limit int) ([]*entity.Hire, error) {
	return uc.hireRepo.ListByClient(ctx, clientID, limit)
}

func (uc *HireUseCase) ListProviderRequests(ctx context.Context, providerID string, limit int) ([]*entity.Hire, error) {
	return uc.hireRepo.ListByProvider(ctx, providerID, limit)
}
