package service

import (
	"context"
	"fmt"
	"time"

	"wedding/guesthub/internal/config"
	"wedding/guesthub/internal/repository"
)

const diagnosticSampleSize = 3

type TableCheck struct {
	Status    string `json:"status"` // "ok" | "error"
	Error     string `json:"error,omitempty"`
	TotalRows int64  `json:"total_rows"`
	Sample    any    `json:"sample,omitempty"`
}

type CrossCheck struct {
	Status         string   `json:"status"`
	CheckedRSVPs   int      `json:"checked_rsvps"`
	OrphanedRSVPID []string `json:"orphaned_rsvp_ids,omitempty"`
	Error          string   `json:"error,omitempty"`
}

type DiagnosticReport struct {
	Timestamp   time.Time             `json:"timestamp"`
	Environment map[string]string     `json:"environment"`
	Tables      map[string]TableCheck `json:"tables"`
	CrossCheck  CrossCheck            `json:"cross_check"`
	AllPassed   bool                  `json:"all_passed"`
	Summary     string                `json:"summary"`
}

// DiagnosticService runs the read-only probes behind the debug endpoint:
// credential presence, per-table row counts with small samples, and an
// orphaned-RSVP cross-check. It duplicates the normal read paths on purpose,
// so a broken repository wiring shows up here too.
type DiagnosticService interface {
	Report(ctx context.Context) *DiagnosticReport
}

type diagnosticService struct {
	cfg         *config.Config
	inviteeRepo repository.InviteeRepository
	rsvpRepo    repository.RSVPRepository
	guestRepo   repository.AdditionalGuestRepository
}

func NewDiagnosticService(
	cfg *config.Config,
	inviteeRepo repository.InviteeRepository,
	rsvpRepo repository.RSVPRepository,
	guestRepo repository.AdditionalGuestRepository,
) DiagnosticService {
	return &diagnosticService{
		cfg:         cfg,
		inviteeRepo: inviteeRepo,
		rsvpRepo:    rsvpRepo,
		guestRepo:   guestRepo,
	}
}

func (s *diagnosticService) Report(ctx context.Context) *DiagnosticReport {
	report := &DiagnosticReport{
		Timestamp:   time.Now().UTC(),
		Environment: s.checkEnvironment(),
		Tables:      map[string]TableCheck{},
	}

	report.Tables["invitees"] = tableCheck(ctx, s.inviteeRepo.Count, s.inviteeRepo.Sample)
	report.Tables["rsvps"] = tableCheck(ctx, s.rsvpRepo.Count, s.rsvpRepo.Sample)
	report.Tables["additional_guests"] = tableCheck(ctx, s.guestRepo.Count, s.guestRepo.Sample)
	report.CrossCheck = s.crossCheckRSVPs(ctx)

	report.AllPassed = report.CrossCheck.Status == "ok"
	for key, val := range report.Environment {
		if key != "redis_password" && val != "set" && val != "ok" {
			report.AllPassed = false
		}
	}
	for _, check := range report.Tables {
		if check.Status != "ok" {
			report.AllPassed = false
		}
	}
	if report.AllPassed {
		report.Summary = "all checks passed"
	} else {
		report.Summary = "one or more checks failed, see sections above"
	}
	return report
}

func (s *diagnosticService) checkEnvironment() map[string]string {
	env := map[string]string{}

	setOrMissing := func(v string) string {
		if v == "" {
			return "MISSING"
		}
		return "set"
	}
	env["postgres_password"] = setOrMissing(s.cfg.Database.Postgres.Password)
	env["dashboard_password_hash"] = setOrMissing(s.cfg.Dashboard.PasswordHash)
	env["session_signing_key"] = setOrMissing(s.cfg.Session.SigningKey)

	// Redis may legitimately run without a password in local setups.
	if s.cfg.Database.Redis.Password == "" {
		env["redis_password"] = "empty"
	} else {
		env["redis_password"] = "set"
	}

	// The session signing key must never double as the debug secret: the
	// debug secret travels in URLs.
	if s.cfg.Session.SigningKey != "" && s.cfg.Session.SigningKey == s.cfg.Debug.Secret {
		env["keys_are_different"] = "ERROR: session signing key equals debug secret"
	} else {
		env["keys_are_different"] = "ok"
	}
	return env
}

func tableCheck[T any](
	ctx context.Context,
	count func(context.Context) (int64, error),
	sample func(context.Context, int) ([]T, error),
) TableCheck {
	n, err := count(ctx)
	if err != nil {
		return TableCheck{Status: "error", Error: err.Error()}
	}
	rows, err := sample(ctx, diagnosticSampleSize)
	if err != nil {
		return TableCheck{Status: "error", Error: err.Error(), TotalRows: n}
	}
	return TableCheck{Status: "ok", TotalRows: n, Sample: rows}
}

// crossCheckRSVPs samples a few RSVPs and verifies each points at an existing
// invitee. Orphans mean a delete cascade went wrong at some point.
func (s *diagnosticService) crossCheckRSVPs(ctx context.Context) CrossCheck {
	rsvps, err := s.rsvpRepo.Sample(ctx, diagnosticSampleSize)
	if err != nil {
		return CrossCheck{Status: "error", Error: fmt.Sprintf("sample rsvps: %v", err)}
	}

	check := CrossCheck{Status: "ok", CheckedRSVPs: len(rsvps)}
	for _, rsvp := range rsvps {
		invitee, err := s.inviteeRepo.GetByID(ctx, rsvp.InviteeID)
		if err != nil {
			return CrossCheck{Status: "error", CheckedRSVPs: len(rsvps), Error: fmt.Sprintf("lookup invitee: %v", err)}
		}
		if invitee == nil {
			check.OrphanedRSVPID = append(check.OrphanedRSVPID, rsvp.ID.String())
		}
	}
	if len(check.OrphanedRSVPID) > 0 {
		check.Status = "orphans_found"
	}
	return check
}
