package client

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/harentsoaR/proconnect-api/internal/models"
)

// IdentityClient looks up user summaries on the identity service, used by the
// directory for profile enrichment.
type IdentityClient struct {
	*Client
}

func NewIdentity(base string, timeout time.Duration, log *zap.Logger) *IdentityClient {
	return &IdentityClient{Client: New(base, timeout, log)}
}

func (c *IdentityClient) GetUser(ctx context.Context, userID string) (*models.UserSummary, error) {
	var summary models.UserSummary
	if err := c.call(ctx, "GET", "/api/users/"+userID, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
