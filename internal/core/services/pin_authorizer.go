package services

import (
	"context"
	"fmt"

	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/utils"
)

// pinAuthorizer approves a credential when it matches the session PIN.
// Only the bcrypt hash of the PIN is kept.
type pinAuthorizer struct {
	pinHash string
}

// NewPinAuthorizer hashes pin and returns an Authorizer that checks against it.
func NewPinAuthorizer(pin string) (portssvc.Authorizer, error) {
	hash, err := utils.HashPIN(pin)
	if err != nil {
		return nil, fmt.Errorf("failed to hash session PIN: %w", err)
	}
	return &pinAuthorizer{pinHash: hash}, nil
}

func (a *pinAuthorizer) Authorize(ctx context.Context, credential string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return utils.CheckPINHash(credential, a.pinHash), nil
}
