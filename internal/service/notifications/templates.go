package notifications

import (
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

func adminBookingMessage(sr *domain.ServiceRequest) Message {
	return Message{
		Subject: SubjectNewServiceRequest,
		Body: fmt.Sprintf(
			"New service request received:\n"+
				"Reference: %s\n"+
				"Client: %s %s\n"+
				"Vehicle: %s\n"+
				"Category: %s\n"+
				"Date/Time: %s\n"+
				"Address: %s",
			sr.ReferenceNumber, sr.Name, sr.Surname, sr.Vehicle, sr.Category, sr.ServiceDateTimeString(), sr.Address,
		),
	}
}

func clientBookingMessage(sr *domain.ServiceRequest) Message {
	return Message{
		Subject: SubjectRequestConfirmed,
		Body: fmt.Sprintf(
			"Hi %s, your service request has been received successfully.\n"+
				"Reference: %s\n"+
				"Vehicle: %s\n"+
				"Category: %s\n"+
				"Date/Time: %s\n"+
				"Address: %s",
			sr.Name, sr.ReferenceNumber, sr.Vehicle, sr.Category, sr.ServiceDateTimeString(), sr.Address,
		),
	}
}

func clientAssignedMessage(sr *domain.ServiceRequest, mechanic *domain.User) Message {
	return Message{
		Subject: SubjectMechanicAssigned,
		Body: fmt.Sprintf(
			"Hi %s,\n\n"+
				"A mechanic has been assigned to your service request:\n"+
				"Reference: %s\n"+
				"Mechanic: %s\n"+
				"Vehicle: %s\n"+
				"Category: %s\n"+
				"Date/Time: %s\n"+
				"Address: %s\n\n"+
				"Thank you!",
			sr.Name, sr.ReferenceNumber, mechanic.Name, sr.Vehicle, sr.Category, sr.ServiceDateTimeString(), sr.Address,
		),
	}
}

func mechanicAssignedMessage(sr *domain.ServiceRequest, mechanic *domain.User) Message {
	return Message{
		Subject: SubjectNewServiceAssigned,
		Body: fmt.Sprintf(
			"Hi %s,\n\n"+
				"You have been assigned to a new service request:\n"+
				"Reference: %s\n"+
				"Client: %s\n"+
				"Vehicle: %s\n"+
				"Category: %s\n"+
				"Date/Time: %s\n"+
				"Address: %s\n"+
				"Phone: %s\n"+
				"Email: %s\n\n"+
				"Please contact the client if needed.",
			mechanic.Name, sr.ReferenceNumber, sr.Name, sr.Vehicle, sr.Category, sr.ServiceDateTimeString(),
			sr.Address, sr.Phone, sr.Email,
		),
	}
}
