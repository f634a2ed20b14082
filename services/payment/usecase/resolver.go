package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tkoskela/libpay/internal/pkg/logger"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

// ResolvePatron produces valid ILS credentials for the transaction's owner
// at registration time. The owner's live credentials may have changed since
// the transaction was created (password rotation, card re-linking), which
// can be hours or days for REGISTRATION_FAILED retries, so the transaction's
// recorded card username is the anchor, not the user's current card.
func (u *PaymentUseCase) ResolvePatron(ctx context.Context, tx *models.Transaction) (*models.Patron, error) {
	user, err := u.userRepo.GetUserByID(ctx, tx.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve transaction owner: %w", err)
	}

	// Fast path: the account's current card still matches what the
	// transaction recorded
	if strings.EqualFold(user.CardUsername, tx.CardUsername) {
		password, err := u.cipher.Decrypt(user.CardPassword)
		if err != nil {
			logger.Warn("Failed to decrypt current card password",
				logger.String("user_id", user.ID.String()),
				logger.Err(err))
		} else {
			patron, err := u.ils.Login(ctx, user.CardUsername, password)
			if err == nil {
				return patron, nil
			}
			logger.Debug("Current card credentials rejected by the ILS",
				logger.String("user_id", user.ID.String()),
				logger.Err(err))
		}
	}

	// The credentials drifted. The same barcode may exist under several
	// card records with different passwords; try each one that matches the
	// recorded username.
	cards, err := u.userRepo.GetCardsByUsername(ctx, user.ID, tx.CardUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate cards: %w", err)
	}

	for _, card := range cards {
		password, err := u.cipher.Decrypt(card.EncryptedPassword)
		if err != nil {
			logger.Warn("Failed to decrypt card password",
				logger.String("card_id", card.ID.String()),
				logger.Err(err))
			continue
		}

		patron, err := u.ils.Login(ctx, card.Username, password)
		if err == nil {
			return patron, nil
		}
		logger.Debug("Card credentials rejected by the ILS",
			logger.String("card_id", card.ID.String()),
			logger.Err(err))
	}

	return nil, payment.ErrAuthenticationFailure
}
