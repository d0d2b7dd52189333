package service

import (
	"context"

	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
)

// VerifyResult is what the RSVP form learns about a token before rendering.
// Reason is set only when Valid is false.
type VerifyResult struct {
	Valid            bool
	Invitee          *model.Invitee
	AlreadySubmitted bool
	Reason           string
}

type TokenService interface {
	// Verify resolves an invitation token. It never returns an error: lookup
	// faults degrade to an invalid result so the form always gets a
	// well-formed answer.
	Verify(ctx context.Context, token string) VerifyResult
}

type tokenService struct {
	inviteeRepo repository.InviteeRepository
	rsvpRepo    repository.RSVPRepository
	logger      *zap.Logger
}

func NewTokenService(
	inviteeRepo repository.InviteeRepository,
	rsvpRepo repository.RSVPRepository,
	logger *zap.Logger,
) TokenService {
	return &tokenService{
		inviteeRepo: inviteeRepo,
		rsvpRepo:    rsvpRepo,
		logger:      logger,
	}
}

func (s *tokenService) Verify(ctx context.Context, token string) VerifyResult {
	if token == "" {
		return VerifyResult{Reason: "No token provided"}
	}

	invitee, err := s.inviteeRepo.GetByToken(ctx, token)
	if err != nil {
		s.logger.Error("invitee lookup failed during token verification", zap.Error(err))
		return VerifyResult{Reason: "Invalid token"}
	}
	if invitee == nil {
		return VerifyResult{Reason: "Invalid token"}
	}

	rsvp, err := s.rsvpRepo.GetByInviteeID(ctx, invitee.ID)
	if err != nil {
		s.logger.Error("rsvp lookup failed during token verification",
			zap.String("invitee_id", invitee.ID.String()), zap.Error(err))
		return VerifyResult{Reason: "Invalid token"}
	}

	return VerifyResult{
		Valid:            true,
		Invitee:          invitee,
		AlreadySubmitted: rsvp != nil,
	}
}
