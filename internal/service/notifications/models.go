package notifications

// Channels
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Subjects
const (
	SubjectNewServiceRequest  = "New Service Request"
	SubjectRequestConfirmed   = "Service Request Confirmed"
	SubjectMechanicAssigned   = "Mechanic Assigned"
	SubjectNewServiceAssigned = "New Service Assigned"
)

// Recipient contact details of one party
type Recipient struct {
	Email string
	Phone string
}

// Message composed notification sent to a recipient over every available channel
type Message struct {
	Subject string
	Body    string
}

// Report outcome of one fan-out. Failures are wrapped domain.ErrNotification.
type Report struct {
	Attempted int
	Delivered int
	Failures  []error
}

func (r *Report) merge(other Report) {
	r.Attempted += other.Attempted
	r.Delivered += other.Delivered
	r.Failures = append(r.Failures, other.Failures...)
}
