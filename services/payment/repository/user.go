package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, card_username, card_password, created_at, updated_at, is_active
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByCardUsername retrieves a user by the library-card username
// currently linked to the account
func (r *UserRepo) GetUserByCardUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, email, card_username, card_password, created_at, updated_at, is_active
		FROM users
		WHERE LOWER(card_username) = LOWER($1)
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetCardsByUsername returns every library card belonging to the user whose
// username matches, case-insensitively. A user may have re-added the same
// barcode under a different card record, or hold several cards with
// different passwords over time.
func (r *UserRepo) GetCardsByUsername(ctx context.Context, userID uuid.UUID, username string) ([]*models.LibraryCard, error) {
	query := `
		SELECT id, user_id, username, encrypted_password, created_at
		FROM library_cards
		WHERE user_id = $1 AND LOWER(username) = LOWER($2)
		ORDER BY created_at DESC
	`

	var cards []*models.LibraryCard
	if err := r.db.SelectContext(ctx, &cards, query, userID, username); err != nil {
		return nil, fmt.Errorf("failed to list library cards: %w", err)
	}

	return cards, nil
}
