package usecase

import (
	"context"
	"strings"

	"pix_direct_sales/internal/usecase/interfaces"
)

// ICredentialResolver returns the bearer credential for a processor call.
type ICredentialResolver interface {
	ForSeller(ctx context.Context, sellerID string) (string, error)
	ForPlatform() (string, error)
}

// CredentialResolver never falls back from a seller to the platform token:
// a seller without a credential blocks the sale.
type CredentialResolver struct {
	credentials   interfaces.ICredentialRepository
	platformToken string
}

var _ ICredentialResolver = (*CredentialResolver)(nil)

func NewCredentialResolver(credentials interfaces.ICredentialRepository, platformToken string) *CredentialResolver {
	return &CredentialResolver{credentials: credentials, platformToken: strings.TrimSpace(platformToken)}
}

func (r *CredentialResolver) ForSeller(ctx context.Context, sellerID string) (string, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" || r.credentials == nil {
		return "", ErrSellerNotConfigured
	}
	c, err := r.credentials.GetBySellerID(ctx, sellerID)
	if err != nil {
		return "", err
	}
	token := strings.TrimSpace(c.AccessToken)
	if token == "" {
		return "", ErrSellerNotConfigured
	}
	return token, nil
}

func (r *CredentialResolver) ForPlatform() (string, error) {
	if r.platformToken == "" {
		return "", ErrPlatformNotConfigured
	}
	return r.platformToken, nil
}
