package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
)

type InviteeService interface {
	// Create adds one invitee per comma-separated part of name, each with its
	// own freshly generated token. An email, if given, is shared by the batch.
	Create(ctx context.Context, name, email string) ([]model.Invitee, error)
	// Delete removes the invitee and, if present, its RSVP and that RSVP's
	// additional guests. Deleting an unknown id is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

type inviteeService struct {
	inviteeRepo repository.InviteeRepository
}

func NewInviteeService(inviteeRepo repository.InviteeRepository) InviteeService {
	return &inviteeService{inviteeRepo: inviteeRepo}
}

func (s *inviteeService) Create(ctx context.Context, name, email string) ([]model.Invitee, error) {
	var names []string
	for _, part := range strings.Split(name, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	if len(names) == 0 {
		return nil, ErrNameRequired
	}

	var sharedEmail *string
	if trimmed := strings.TrimSpace(email); trimmed != "" {
		sharedEmail = &trimmed
	}

	invitees := make([]*model.Invitee, 0, len(names))
	for _, n := range names {
		invitees = append(invitees, &model.Invitee{
			Name:  n,
			Email: sharedEmail,
			Token: uuid.NewString(),
		})
	}
	if err := s.inviteeRepo.CreateBatch(ctx, invitees); err != nil {
		return nil, fmt.Errorf("insert invitees: %w", err)
	}

	created := make([]model.Invitee, len(invitees))
	for i, inv := range invitees {
		created[i] = *inv
	}
	return created, nil
}

func (s *inviteeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.inviteeRepo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete invitee: %w", err)
	}
	return nil
}
