package client

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CreateProfileRequest is the service-to-service payload for creating a
// professional profile during registration.
type CreateProfileRequest struct {
	UserID         string   `json:"userId"`
	Profession     string   `json:"profession"`
	Experience     int      `json:"experience"`
	Qualifications []string `json:"qualifications"`
	Services       []string `json:"services,omitempty"`
}

// DirectoryClient creates professional profiles on the directory service,
// used by identity during two-phase registration.
type DirectoryClient struct {
	*Client
}

func NewDirectory(base string, timeout time.Duration, log *zap.Logger) *DirectoryClient {
	return &DirectoryClient{Client: New(base, timeout, log)}
}

func (c *DirectoryClient) CreateProfile(ctx context.Context, req CreateProfileRequest) error {
	return c.call(ctx, "POST", "/api/professionals", req, nil)
}
