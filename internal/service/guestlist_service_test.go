package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"wedding/guesthub/internal/model"
)

func TestJoinInvitees(t *testing.T) {
	inv1 := model.Invitee{ID: uuid.New(), Name: "Alice"}
	inv2 := model.Invitee{ID: uuid.New(), Name: "Bob"}
	rsvp := model.RSVP{ID: uuid.New(), InviteeID: inv1.ID, Attending: true, GuestCount: 1}
	guest := model.AdditionalGuest{ID: uuid.New(), RSVPID: rsvp.ID, Name: "Plus One"}

	entries := joinInvitees(
		[]model.Invitee{inv1, inv2},
		[]model.RSVP{rsvp},
		[]model.AdditionalGuest{guest},
	)

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].RSVP == nil || entries[0].RSVP.ID != rsvp.ID {
		t.Fatalf("rsvp not attached to first invitee: %+v", entries[0].RSVP)
	}
	if len(entries[0].RSVP.AdditionalGuests) != 1 || entries[0].RSVP.AdditionalGuests[0].Name != "Plus One" {
		t.Fatalf("additional guests not attached: %+v", entries[0].RSVP.AdditionalGuests)
	}
	if entries[1].RSVP != nil {
		t.Fatalf("second invitee has no rsvp, got %+v", entries[1].RSVP)
	}
}

func TestJoinInvitees_RSVPWithoutGuestsGetsEmptySlice(t *testing.T) {
	inv := model.Invitee{ID: uuid.New(), Name: "Alice"}
	rsvp := model.RSVP{ID: uuid.New(), InviteeID: inv.ID, Attending: true}

	entries := joinInvitees([]model.Invitee{inv}, []model.RSVP{rsvp}, nil)
	if entries[0].RSVP.AdditionalGuests == nil {
		t.Fatalf("additional_guests must marshal as [], not null")
	}
}

func TestComputeStats(t *testing.T) {
	// 2 accepted with guest counts {1, 0}, 1 declined, 1 pending.
	entries := []InviteeEntry{
		{RSVP: &RSVPEntry{RSVP: model.RSVP{Attending: true, GuestCount: 1}}},
		{RSVP: &RSVPEntry{RSVP: model.RSVP{Attending: true, GuestCount: 0}}},
		{RSVP: &RSVPEntry{RSVP: model.RSVP{Attending: false, GuestCount: 0}}},
		{RSVP: nil},
	}

	got := computeStats(entries)
	want := GuestListStats{Total: 4, Accepted: 2, Declined: 1, Pending: 1, TotalGuests: 3}
	if got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
}

func TestList_EmptyGuestList(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewGuestListService(repos.invitees, repos.rsvps, repos.guests, testLogger())

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Invitees == nil || len(list.Invitees) != 0 {
		t.Fatalf("want empty invitees slice, got %+v", list.Invitees)
	}
	if list.Stats != (GuestListStats{}) {
		t.Fatalf("want all-zero stats, got %+v", list.Stats)
	}
}

func TestList_JoinedViewAndStats(t *testing.T) {
	repos := newTestRepos(t)
	inviteeSvc := NewInviteeService(repos.invitees)
	rsvpSvc := NewRSVPService(repos.invitees, repos.rsvps, repos.guests, testLogger())
	ctx := context.Background()

	created, err := inviteeSvc.Create(ctx, "Alice, Bob, Carol, Dave", "")
	if err != nil {
		t.Fatalf("create invitees: %v", err)
	}

	// Alice accepts with one named companion, Bob accepts alone, Carol
	// declines, Dave never answers.
	submissions := []SubmitRSVPInput{
		{Token: created[0].Token, SubmitterName: "Alice", Attending: true, GuestCount: 1, AdditionalGuests: []string{"Ann", "Aldo"}},
		{Token: created[1].Token, SubmitterName: "Bob", Attending: true},
		{Token: created[2].Token, SubmitterName: "Carol", Attending: false},
	}
	for _, in := range submissions {
		if err := rsvpSvc.Submit(ctx, in); err != nil {
			t.Fatalf("submit for %s: %v", in.SubmitterName, err)
		}
	}

	svc := NewGuestListService(repos.invitees, repos.rsvps, repos.guests, testLogger())
	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := GuestListStats{Total: 4, Accepted: 2, Declined: 1, Pending: 1, TotalGuests: 3}
	if list.Stats != want {
		t.Fatalf("stats = %+v, want %+v", list.Stats, want)
	}

	byName := map[string]InviteeEntry{}
	for _, e := range list.Invitees {
		byName[e.Name] = e
	}
	alice := byName["Alice"]
	if alice.RSVP == nil || len(alice.RSVP.AdditionalGuests) != 2 {
		t.Fatalf("alice's additional guests missing: %+v", alice.RSVP)
	}
	names := map[string]bool{}
	for _, g := range alice.RSVP.AdditionalGuests {
		names[g.Name] = true
	}
	if !names["Ann"] || !names["Aldo"] {
		t.Fatalf("unexpected names attached to alice: %v", names)
	}
	if byName["Dave"].RSVP != nil {
		t.Fatalf("dave is pending, rsvp must be nil")
	}
}

func TestList_Idempotent(t *testing.T) {
	repos := newTestRepos(t)
	inviteeSvc := NewInviteeService(repos.invitees)
	rsvpSvc := NewRSVPService(repos.invitees, repos.rsvps, repos.guests, testLogger())
	ctx := context.Background()

	created, err := inviteeSvc.Create(ctx, "Alice, Bob", "")
	if err != nil {
		t.Fatalf("create invitees: %v", err)
	}
	if err := rsvpSvc.Submit(ctx, SubmitRSVPInput{
		Token: created[0].Token, SubmitterName: "Alice", Attending: true, GuestCount: 1,
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	svc := NewGuestListService(repos.invitees, repos.rsvps, repos.guests, testLogger())
	first, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated list calls differ:\n%+v\n%+v", first, second)
	}
}
