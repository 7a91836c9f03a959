package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
	copyrightdto "github.com/metalaloud/royalty-service/internal/usecase/dto/copyright"
)

// ReviewRegistration transitions a pending registration to active or
// rejected. Active and rejected registrations are immutable.
func (uc *DefaultCopyrightUsecase) ReviewRegistration(ctx context.Context, input *copyrightdto.ReviewRegistrationInput) error {
	registration, err := uc.copyrightRepo.GetRegistrationByID(ctx, input.RegistrationID)
	if err != nil {
		return err
	}
	if registration.Status != domain.CopyrightPending {
		return fmt.Errorf("%w: registration %s is %s", domain.ErrRegistrationClosed, registration.ID, registration.Status)
	}

	status := domain.CopyrightRejected
	if input.Approve {
		status = domain.CopyrightActive
	}
	if err := uc.copyrightRepo.UpdateRegistrationStatus(ctx, registration.ID, status, time.Now()); err != nil {
		return err
	}

	uc.metrics.RecordRegistrationReviewed(string(status))
	slog.Info("copyright registration reviewed", "registration_id", registration.ID, "status", status)
	return nil
}

// ActivateExpiredAutomaticRegistrations activates automatic-type
// registrations that stayed pending past the review window. Manual
// registrations always wait for a moderator.
func (uc *DefaultCopyrightUsecase) ActivateExpiredAutomaticRegistrations(ctx context.Context, reviewWindow time.Duration) error {
	cutoff := time.Now().Add(-reviewWindow)
	pending, err := uc.copyrightRepo.FindPendingAutomaticBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	for _, registration := range pending {
		if err := uc.copyrightRepo.UpdateRegistrationStatus(ctx, registration.ID, domain.CopyrightActive, time.Now()); err != nil {
			slog.Error("failed to auto-activate registration", "registration_id", registration.ID, "error", err.Error())
			continue
		}
		uc.metrics.RecordRegistrationReviewed(string(domain.CopyrightActive))
		slog.Info("registration auto-activated", "registration_id", registration.ID, "copyright_id", registration.CopyrightID)
	}
	return nil
}
