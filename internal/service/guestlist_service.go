package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
)

// GuestName is the trimmed additional-guest shape the dashboard renders.
type GuestName struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type RSVPEntry struct {
	model.RSVP
	AdditionalGuests []GuestName `json:"additional_guests"`
}

type InviteeEntry struct {
	model.Invitee
	RSVP *RSVPEntry `json:"rsvp"`
}

type GuestListStats struct {
	Total       int `json:"total"`
	Accepted    int `json:"accepted"`
	Declined    int `json:"declined"`
	Pending     int `json:"pending"`
	TotalGuests int `json:"totalGuests"`
}

type GuestList struct {
	Invitees []InviteeEntry `json:"invitees"`
	Stats    GuestListStats `json:"stats"`
}

type GuestListService interface {
	// List returns every invitee with its RSVP (or null) and additional
	// guests attached, plus summary stats. A failed additional-guest fetch
	// degrades to an empty guest set instead of failing the request.
	List(ctx context.Context) (*GuestList, error)
}

type guestListService struct {
	inviteeRepo repository.InviteeRepository
	rsvpRepo    repository.RSVPRepository
	guestRepo   repository.AdditionalGuestRepository
	logger      *zap.Logger
}

func NewGuestListService(
	inviteeRepo repository.InviteeRepository,
	rsvpRepo repository.RSVPRepository,
	guestRepo repository.AdditionalGuestRepository,
	logger *zap.Logger,
) GuestListService {
	return &guestListService{
		inviteeRepo: inviteeRepo,
		rsvpRepo:    rsvpRepo,
		guestRepo:   guestRepo,
		logger:      logger,
	}
}

func (s *guestListService) List(ctx context.Context) (*GuestList, error) {
	invitees, err := s.inviteeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch invitees: %w", err)
	}
	if len(invitees) == 0 {
		return &GuestList{Invitees: []InviteeEntry{}}, nil
	}

	inviteeIDs := make([]uuid.UUID, len(invitees))
	for i, inv := range invitees {
		inviteeIDs[i] = inv.ID
	}
	rsvps, err := s.rsvpRepo.ListByInviteeIDs(ctx, inviteeIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch rsvps: %w", err)
	}

	var guests []model.AdditionalGuest
	if len(rsvps) > 0 {
		rsvpIDs := make([]uuid.UUID, len(rsvps))
		for i, r := range rsvps {
			rsvpIDs[i] = r.ID
		}
		guests, err = s.guestRepo.ListByRSVPIDs(ctx, rsvpIDs)
		if err != nil {
			s.logger.Error("additional guests fetch failed, continuing without names", zap.Error(err))
			guests = nil
		}
	}

	entries := joinInvitees(invitees, rsvps, guests)
	return &GuestList{
		Invitees: entries,
		Stats:    computeStats(entries),
	}, nil
}

// joinInvitees merges the three table snapshots into the per-invitee view.
// Pure function over its inputs; invitee order is preserved.
func joinInvitees(invitees []model.Invitee, rsvps []model.RSVP, guests []model.AdditionalGuest) []InviteeEntry {
	guestsByRSVPID := make(map[uuid.UUID][]GuestName)
	for _, g := range guests {
		guestsByRSVPID[g.RSVPID] = append(guestsByRSVPID[g.RSVPID], GuestName{ID: g.ID, Name: g.Name})
	}

	rsvpByInviteeID := make(map[uuid.UUID]*RSVPEntry, len(rsvps))
	for _, r := range rsvps {
		names := guestsByRSVPID[r.ID]
		if names == nil {
			names = []GuestName{}
		}
		rsvpByInviteeID[r.InviteeID] = &RSVPEntry{RSVP: r, AdditionalGuests: names}
	}

	entries := make([]InviteeEntry, len(invitees))
	for i, inv := range invitees {
		entries[i] = InviteeEntry{Invitee: inv, RSVP: rsvpByInviteeID[inv.ID]}
	}
	return entries
}

func computeStats(entries []InviteeEntry) GuestListStats {
	stats := GuestListStats{Total: len(entries)}
	for _, e := range entries {
		switch {
		case e.RSVP == nil:
			stats.Pending++
		case e.RSVP.Attending:
			stats.Accepted++
			stats.TotalGuests += 1 + e.RSVP.GuestCount
		default:
			stats.Declined++
		}
	}
	return stats
}
