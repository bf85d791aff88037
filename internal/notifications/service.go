// Package notifications implements the borrow/return notice sink. Notices are
// written to an outbox table and delivered by a background task, so a slow or
// failing delivery channel never blocks the circulation desk.
package notifications

import (
	"log"

	"github.com/openshelf/openshelf/internal/catalog"
	notificationsRepo "github.com/openshelf/openshelf/internal/database/notifications"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/tasks"
)

// Service implements catalog.NotificationSink over the outbox table and the
// task queue. The sink contract is fire-and-forget: failures are logged, never
// returned to the caller.
type Service struct {
	outbox     *notificationsRepo.Repository
	taskClient *tasks.Client // optional; nil disables background delivery
}

var _ catalog.NotificationSink = (*Service)(nil)

// NewService creates a notification service. taskClient may be nil, in which
// case notices stay pending in the outbox until a queue is attached.
func NewService(outbox *notificationsRepo.Repository, taskClient *tasks.Client) *Service {
	return &Service{outbox: outbox, taskClient: taskClient}
}

// NotifyBorrow queues a borrow notice for the member.
func (s *Service) NotifyBorrow(memberID uint, title string) {
	s.enqueue(memberID, title, entities.NotificationKindBorrow)
}

// NotifyReturn queues a return notice for the member.
func (s *Service) NotifyReturn(memberID uint, title string) {
	s.enqueue(memberID, title, entities.NotificationKindReturn)
}

func (s *Service) enqueue(memberID uint, title string, kind entities.NotificationKind) {
	notification := &entities.Notification{
		MemberID:  memberID,
		BookTitle: title,
		Kind:      kind,
	}
	if err := s.outbox.Create(notification); err != nil {
		log.Printf("Failed to record %s notice for member %d: %v", kind, memberID, err)
		return
	}

	if s.taskClient == nil {
		return
	}
	if _, err := s.taskClient.Add(tasks.SendLoanNoticeTask{NotificationID: notification.ID}).Save(); err != nil {
		log.Printf("Failed to queue %s notice %d: %v", kind, notification.ID, err)
	}
}
