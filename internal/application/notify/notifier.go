// Package notify turns domain events into transactional email, replacing the
// reactive backend functions of the hosted platform: request-created fans out
// to sellers, company-approved mails the owner, and a weekly cron digests
// platform activity for superadmins. Everything here is best-effort: a send
// failure is logged and never reaches the write that triggered it.
package notify

import (
	"context"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
	"github.com/dgm-logistikk/frakt-api/pkg/event"
	"github.com/dgm-logistikk/frakt-api/pkg/logger"
)

// Mailer is the outbound email port. Implementations live in infrastructure.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// Notifier subscribes to the bus and sends the event-driven emails.
type Notifier struct {
	bus      *event.Bus
	users    repository.UserRepository
	mailer   Mailer
	log      *logger.Logger
	baseURL  string
	unsubers []func()
}

// NewNotifier builds the notifier. Start must be called to begin listening.
func NewNotifier(bus *event.Bus, users repository.UserRepository, mailer Mailer, log *logger.Logger, baseURL string) *Notifier {
	return &Notifier{bus: bus, users: users, mailer: mailer, log: log, baseURL: baseURL}
}

// Start registers the bus subscriptions.
func (n *Notifier) Start() {
	n.unsubers = append(n.unsubers,
		n.bus.Subscribe(TopicRequestCreated, func(payload interface{}) {
			ev, ok := payload.(RequestCreatedEvent)
			if !ok {
				return
			}
			n.onRequestCreated(ev)
		}),
		n.bus.Subscribe(TopicCompanyApproved, func(payload interface{}) {
			ev, ok := payload.(CompanyApprovedEvent)
			if !ok {
				return
			}
			n.onCompanyApproved(ev)
		}),
	)
}

// Stop removes the bus subscriptions.
func (n *Notifier) Stop() {
	for _, unsub := range n.unsubers {
		unsub()
	}
	n.unsubers = nil
}

// onRequestCreated emails every seller about the new freight request.
func (n *Notifier) onRequestCreated(ev RequestCreatedEvent) {
	sellers, err := n.users.ListByRole(context.Background(), entity.RoleSeller)
	if err != nil {
		n.log.Error().Err(err).Str("request_id", ev.Request.ID).Msg("list sellers for request notification")
		return
	}
	subject, body := requestCreatedEmail(ev, n.baseURL)
	sent := 0
	for _, seller := range sellers {
		if seller.Email == "" {
			continue
		}
		if err := n.mailer.Send(seller.Email, subject, body); err != nil {
			n.log.Error().Err(err).Str("to", seller.Email).Msg("send request notification")
			continue
		}
		sent++
	}
	n.log.Info().Int("sent", sent).Str("request_id", ev.Request.ID).Msg("request notifications sent")
}

// onCompanyApproved emails the company owner.
func (n *Notifier) onCompanyApproved(ev CompanyApprovedEvent) {
	if ev.OwnerEmail == "" {
		n.log.Warn().Str("company_id", ev.Company.ID).Msg("approved company has no owner email")
		return
	}
	subject, body := companyApprovedEmail(ev, n.baseURL)
	if err := n.mailer.Send(ev.OwnerEmail, subject, body); err != nil {
		n.log.Error().Err(err).Str("to", ev.OwnerEmail).Msg("send approval notification")
		return
	}
	n.log.Info().Str("to", ev.OwnerEmail).Str("company_id", ev.Company.ID).Msg("approval notification sent")
}
