package domain

// WebhookEvent identifies a domain event kind that endpoints can subscribe to.
// The set is closed: dispatch call sites use these constants, so an unknown
// kind is a compile-time error rather than a runtime surprise.
type WebhookEvent string

const (
	EventUserCreated WebhookEvent = "user.created"
	EventUserUpdated WebhookEvent = "user.updated"
	EventUserDeleted WebhookEvent = "user.deleted"

	EventTeamCreated WebhookEvent = "team.created"
	EventTeamUpdated WebhookEvent = "team.updated"
	EventTeamDeleted WebhookEvent = "team.deleted"

	EventFieldCreated WebhookEvent = "field.created"
	EventFieldUpdated WebhookEvent = "field.updated"
	EventFieldDeleted WebhookEvent = "field.deleted"

	EventReservationCreated   WebhookEvent = "reservation.created"
	EventReservationUpdated   WebhookEvent = "reservation.updated"
	EventReservationCancelled WebhookEvent = "reservation.cancelled"

	EventPaymentProcessed WebhookEvent = "payment.processed"
	EventPaymentRefunded  WebhookEvent = "payment.refunded"

	EventSyncCompleted WebhookEvent = "sync.completed"
	EventSyncFailed    WebhookEvent = "sync.failed"
)

// AllEvents lists every supported event kind, grouped by resource.
var AllEvents = []WebhookEvent{
	EventUserCreated, EventUserUpdated, EventUserDeleted,
	EventTeamCreated, EventTeamUpdated, EventTeamDeleted,
	EventFieldCreated, EventFieldUpdated, EventFieldDeleted,
	EventReservationCreated, EventReservationUpdated, EventReservationCancelled,
	EventPaymentProcessed, EventPaymentRefunded,
	EventSyncCompleted, EventSyncFailed,
}

var validEvents = func() map[WebhookEvent]struct{} {
	m := make(map[WebhookEvent]struct{}, len(AllEvents))
	for _, e := range AllEvents {
		m[e] = struct{}{}
	}
	return m
}()

// Valid reports whether e is a known event kind.
func (e WebhookEvent) Valid() bool {
	_, ok := validEvents[e]
	return ok
}
