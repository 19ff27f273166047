package notify

import "github.com/dgm-logistikk/frakt-api/internal/domain/entity"

// Bus topics produced by the write paths. Consumers: the email notifier and
// the live browse stream.
const (
	TopicRequestCreated  = "request.created"
	TopicCompanyApproved = "company.approved"
	// TopicRequestsChanged fires on any mutation of the requests collection;
	// payload is nil, watchers re-query their snapshot.
	TopicRequestsChanged = "requests.changed"
)

// RequestCreatedEvent carries the new request plus its resolved company name.
type RequestCreatedEvent struct {
	Request     entity.FreightRequest
	CompanyName string
}

// CompanyApprovedEvent carries the approved company plus the owner's email.
type CompanyApprovedEvent struct {
	Company    entity.Company
	OwnerEmail string
}
