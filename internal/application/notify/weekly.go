package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
	"github.com/dgm-logistikk/frakt-api/pkg/logger"
)

// WeeklyDigest mails trailing-7-day creation counts to every superadmin on a
// cron schedule (Monday 09:00 Europe/Oslo by default).
type WeeklyDigest struct {
	stats    repository.StatsRepository
	users    repository.UserRepository
	mailer   Mailer
	log      *logger.Logger
	baseURL  string
	cronSpec string
	timezone string
	c        *cron.Cron
}

// NewWeeklyDigest builds the digest job.
func NewWeeklyDigest(stats repository.StatsRepository, users repository.UserRepository, mailer Mailer, log *logger.Logger, baseURL, cronSpec, timezone string) *WeeklyDigest {
	return &WeeklyDigest{
		stats:    stats,
		users:    users,
		mailer:   mailer,
		log:      log,
		baseURL:  baseURL,
		cronSpec: cronSpec,
		timezone: timezone,
	}
}

// Start schedules the job. The cron runs in its own goroutine until Stop.
func (w *WeeklyDigest) Start() error {
	loc, err := time.LoadLocation(w.timezone)
	if err != nil {
		return fmt.Errorf("weekly digest: load timezone %q: %w", w.timezone, err)
	}
	w.c = cron.New(cron.WithLocation(loc))
	if _, err := w.c.AddFunc(w.cronSpec, func() {
		if err := w.Run(context.Background()); err != nil {
			w.log.Error().Err(err).Msg("weekly digest run")
		}
	}); err != nil {
		return fmt.Errorf("weekly digest: schedule %q: %w", w.cronSpec, err)
	}
	w.c.Start()
	w.log.Info().Str("cron", w.cronSpec).Str("tz", w.timezone).Msg("weekly digest scheduled")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (w *WeeklyDigest) Stop() {
	if w.c != nil {
		<-w.c.Stop().Done()
	}
}

// Run executes one digest: count records created in the trailing 7 days and
// email every superadmin. Independent of the rest of the application state.
func (w *WeeklyDigest) Run(ctx context.Context) error {
	since := time.Now().AddDate(0, 0, -7)
	counts, err := w.stats.CountsSince(ctx, since)
	if err != nil {
		return fmt.Errorf("weekly counts: %w", err)
	}
	admins, err := w.users.ListByRole(ctx, entity.RoleSuperadmin)
	if err != nil {
		return fmt.Errorf("list superadmins: %w", err)
	}
	if len(admins) == 0 {
		return nil
	}
	subject, body := weeklyStatsEmail(counts, w.baseURL)
	sent := 0
	for _, admin := range admins {
		if admin.Email == "" {
			continue
		}
		if err := w.mailer.Send(admin.Email, subject, body); err != nil {
			w.log.Error().Err(err).Str("to", admin.Email).Msg("send weekly digest")
			continue
		}
		sent++
	}
	w.log.Info().Int("sent", sent).
		Int("new_requests", counts.NewRequests).
		Int("new_companies", counts.NewCompanies).
		Int("new_users", counts.NewUsers).
		Msg("weekly digest sent")
	return nil
}
