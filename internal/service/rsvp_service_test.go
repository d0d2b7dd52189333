package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSubmit_NotAttendingForcesZeroGuestCount(t *testing.T) {
	repos := newTestRepos(t)
	inviteeSvc := NewInviteeService(repos.invitees)
	created, err := inviteeSvc.Create(context.Background(), "Carol", "")
	if err != nil {
		t.Fatalf("create invitee: %v", err)
	}

	svc := NewRSVPService(repos.invitees, repos.rsvps, repos.guests, testLogger())
	err = svc.Submit(context.Background(), SubmitRSVPInput{
		Token:         created[0].Token,
		SubmitterName: "Carol",
		Attending:     false,
		GuestCount:    5,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	rsvp, err := repos.rsvps.GetByInviteeID(context.Background(), created[0].ID)
	if err != nil || rsvp == nil {
		t.Fatalf("read back rsvp: %v %v", rsvp, err)
	}
	if rsvp.GuestCount != 0 {
		t.Fatalf("declining rsvp persisted guest_count=%d, want 0", rsvp.GuestCount)
	}
	if rsvp.Attending {
		t.Fatalf("expected attending=false")
	}
}

func TestSubmit_SecondRSVPFails(t *testing.T) {
	repos := newTestRepos(t)
	inviteeSvc := NewInviteeService(repos.invitees)
	created, err := inviteeSvc.Create(context.Background(), "Dave", "")
	if err != nil {
		t.Fatalf("create invitee: %v", err)
	}

	svc := NewRSVPService(repos.invitees, repos.rsvps, repos.guests, testLogger())
	in := SubmitRSVPInput{Token: created[0].Token, SubmitterName: "Dave", Attending: true}
	if err := svc.Submit(context.Background(), in); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := svc.Submit(context.Background(), in); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("second submit: got %v, want ErrAlreadySubmitted", err)
	}
}

func TestSubmit_InvalidToken(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRSVPService(repos.invitees, repos.rsvps, repos.guests, testLogger())

	err := svc.Submit(context.Background(), SubmitRSVPInput{
		Token:         "bogus",
		SubmitterName: "Nobody",
		Attending:     true,
	})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v, want ErrInvalidToken", err)
	}
}

func TestSubmit_BlankSubmitterName(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRSVPService(repos.invitees, repos.rsvps, repos.guests, testLogger())

	err := svc.Submit(context.Background(), SubmitRSVPInput{
		Token:         "whatever",
		SubmitterName: "   ",
		Attending:     true,
	})
	if !errors.Is(err, ErrSubmitterRequired) {
		t.Fatalf("got %v, want ErrSubmitterRequired", err)
	}
}

func TestSubmit_NegativeGuestCount(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewRSVPService(repos.invitees, repos.rsvps, repos.guests, testLogger())

	err := svc.Submit(context.Background(), SubmitRSVPInput{
		Token:         "whatever",
		SubmitterName: "Eve",
		Attending:     true,
		GuestCount:    -1,
	})
	if !errors.Is(err, ErrGuestCountNegative) {
		t.Fatalf("got %v, want ErrGuestCountNegative", err)
	}
}

func TestSubmit_AdditionalGuestNamesTrimmedAndFiltered(t *testing.T) {
	repos := newTestRepos(t)
	inviteeSvc := NewInviteeService(repos.invitees)
	created, err := inviteeSvc.Create(context.Background(), "Frank", "")
	if err != nil {
		t.Fatalf("create invitee: %v", err)
	}

	svc := NewRSVPService(repos.invitees, repos.rsvps, repos.guests, testLogger())
	err = svc.Submit(context.Background(), SubmitRSVPInput{
		Token:            created[0].Token,
		SubmitterName:    "Frank",
		Attending:        true,
		GuestCount:       2,
		AdditionalGuests: []string{" Grace ", "", "   ", "Heidi"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	rsvp, err := repos.rsvps.GetByInviteeID(context.Background(), created[0].ID)
	if err != nil || rsvp == nil {
		t.Fatalf("read back rsvp: %v %v", rsvp, err)
	}
	guests, err := repos.guests.ListByRSVPIDs(context.Background(), []uuid.UUID{rsvp.ID})
	if err != nil {
		t.Fatalf("list guests: %v", err)
	}
	if len(guests) != 2 {
		t.Fatalf("got %d guest rows, want 2", len(guests))
	}
	names := map[string]bool{}
	for _, g := range guests {
		names[g.Name] = true
	}
	if !names["Grace"] || !names["Heidi"] {
		t.Fatalf("unexpected guest names: %v", names)
	}
}
