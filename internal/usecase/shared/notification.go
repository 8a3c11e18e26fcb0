package shared

import "github.com/google/uuid"

// Outbox topics written by the command side and rendered by the notification worker.
const (
	TopicBookingCreated       = "booking_created"
	TopicBookingCancelled     = "booking_cancelled"
	TopicBookingStatusChanged = "booking_status_changed"
	TopicRoomAssigned         = "room_assigned"
	TopicCustomTourRequested  = "custom_tour_requested"
	TopicCustomTourGuide      = "custom_tour_guide_assigned"
	TopicCustomTourQuoted     = "custom_tour_quoted"
	TopicCustomTourBargained  = "custom_tour_bargained"
	TopicCustomTourClosed     = "custom_tour_closed"
	NotificationKindEmail     = "email"
)

// NotificationEvent is the JSON payload of a notification job. A nil RecipientID addresses
// the operations mailbox.
type NotificationEvent struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	Status      string    `json:"status,omitempty"`
	Summary     string    `json:"summary,omitempty"`
}
