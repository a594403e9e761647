// internal/service/notification/service.go
package notification

import (
	"sync"

	"go.uber.org/zap"

	"sumon-service/internal/domain/inquiry"
)

// Sender delivers a rendered HTML email.
type Sender interface {
	Send(to, subject, bodyHTML string) error
}

// NotificationService sends inquiry emails without blocking the request path.
type NotificationService struct {
	sender       Sender
	contactEmail string
	log          *zap.Logger
	wg           sync.WaitGroup
}

func NewNotificationService(sender Sender, contactEmail string, log *zap.Logger) *NotificationService {
	return &NotificationService{
		sender:       sender,
		contactEmail: contactEmail,
		log:          log,
	}
}

// Dispatch fires the admin alert and the client confirmation on separate
// goroutines. Delivery failures are logged and never surfaced to the caller:
// the inquiry is already persisted by the time emails go out.
func (s *NotificationService) Dispatch(inq *inquiry.Inquiry) {
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		if err := s.NotifyAdmin(inq); err != nil {
			s.log.Error("admin alert email failed",
				zap.Int64("inquiry_id", inq.ID),
				zap.Error(err))
		}
	}()
	go func() {
		defer s.wg.Done()
		if err := s.ConfirmToClient(inq); err != nil {
			s.log.Error("client confirmation email failed",
				zap.Int64("inquiry_id", inq.ID),
				zap.String("to", inq.Email),
				zap.Error(err))
		}
	}()
}

// NotifyAdmin sends the new-inquiry alert to the configured contact address.
func (s *NotificationService) NotifyAdmin(inq *inquiry.Inquiry) error {
	subject, body, err := renderAdminAlert(inq, s.contactEmail)
	if err != nil {
		return err
	}
	return s.sender.Send(s.contactEmail, subject, body)
}

// ConfirmToClient sends the thank-you confirmation to the inquiry sender.
func (s *NotificationService) ConfirmToClient(inq *inquiry.Inquiry) error {
	subject, body, err := renderClientConfirmation(inq, s.contactEmail)
	if err != nil {
		return err
	}
	return s.sender.Send(inq.Email, subject, body)
}

// Wait blocks until all in-flight deliveries finish. Called on shutdown.
func (s *NotificationService) Wait() {
	s.wg.Wait()
}
