package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
)

type SubmitRSVPInput struct {
	Token            string
	SubmitterName    string
	Attending        bool
	GuestCount       int
	AdditionalGuests []string
}

type RSVPService interface {
	// Submit records at most one RSVP for the invitee behind the token.
	// Additional-guest rows are best effort: a failure inserting them is
	// logged and swallowed, the RSVP itself stands.
	Submit(ctx context.Context, in SubmitRSVPInput) error
}

type rsvpService struct {
	inviteeRepo repository.InviteeRepository
	rsvpRepo    repository.RSVPRepository
	guestRepo   repository.AdditionalGuestRepository
	logger      *zap.Logger
}

func NewRSVPService(
	inviteeRepo repository.InviteeRepository,
	rsvpRepo repository.RSVPRepository,
	guestRepo repository.AdditionalGuestRepository,
	logger *zap.Logger,
) RSVPService {
	return &rsvpService{
		inviteeRepo: inviteeRepo,
		rsvpRepo:    rsvpRepo,
		guestRepo:   guestRepo,
		logger:      logger,
	}
}

func (s *rsvpService) Submit(ctx context.Context, in SubmitRSVPInput) error {
	submitterName := strings.TrimSpace(in.SubmitterName)
	if submitterName == "" {
		return ErrSubmitterRequired
	}
	if in.GuestCount < 0 {
		return ErrGuestCountNegative
	}

	invitee, err := s.inviteeRepo.GetByToken(ctx, in.Token)
	if err != nil {
		return fmt.Errorf("resolve invitee: %w", err)
	}
	if invitee == nil {
		return ErrInvalidToken
	}

	existing, err := s.rsvpRepo.GetByInviteeID(ctx, invitee.ID)
	if err != nil {
		return fmt.Errorf("check existing rsvp: %w", err)
	}
	if existing != nil {
		return ErrAlreadySubmitted
	}

	guestCount := in.GuestCount
	if !in.Attending {
		guestCount = 0
	}
	rsvp := &model.RSVP{
		InviteeID:     invitee.ID,
		SubmitterName: submitterName,
		Attending:     in.Attending,
		GuestCount:    guestCount,
	}
	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		// The unique index on invitee_id decides races the existence check
		// above cannot see.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadySubmitted
		}
		return fmt.Errorf("insert rsvp: %w", err)
	}

	if in.Attending {
		var guests []*model.AdditionalGuest
		for _, name := range in.AdditionalGuests {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			guests = append(guests, &model.AdditionalGuest{RSVPID: rsvp.ID, Name: name})
		}
		if len(guests) > 0 {
			if err := s.guestRepo.CreateBatch(ctx, guests); err != nil {
				s.logger.Error("additional guests insert failed, rsvp kept",
					zap.String("rsvp_id", rsvp.ID.String()),
					zap.Int("guests", len(guests)),
					zap.Error(err))
			}
		}
	}

	return nil
}
