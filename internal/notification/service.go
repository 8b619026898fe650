package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"petcare_backend/internal/adoption"
	"petcare_backend/internal/common"
)

// RequestLister is the slice of the adoption workflow the projection reads.
type RequestLister interface {
	ListForUser(ctx context.Context, userID uuid.UUID, role string) ([]adoption.Request, error)
}

// Service projects adoption requests into a notification feed. The feed is
// recomputed on every read and never stored, so it is idempotent by
// construction.
type Service interface {
	GetFeedForUser(ctx context.Context, userID uuid.UUID, role string) Feed
}

type ServiceImplementation struct {
	requests RequestLister
	logger   *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

func NewService(requests RequestLister, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		requests: requests,
		logger:   logger.Named("NotificationService"),
	}
}

// GetFeedForUser builds the feed for a user. Adopters see one entry per
// request they submitted; shelters see one entry per request targeting their
// pets. The unread count is the number of still-pending requests. A read
// failure degrades to an empty feed rather than an error.
func (s *ServiceImplementation) GetFeedForUser(ctx context.Context, userID uuid.UUID, role string) Feed {
	requests, err := s.requests.ListForUser(ctx, userID, role)
	if err != nil {
		s.logger.Error("Failed to load adoption requests for notification feed",
			zap.Error(err), zap.String("userID", userID.String()))
		return Feed{Notifications: []Notification{}}
	}

	feed := Feed{Notifications: make([]Notification, 0, len(requests))}
	for _, request := range requests {
		feed.Notifications = append(feed.Notifications, fromRequest(&request, role))
		if request.Status == adoption.StatusPending {
			feed.UnreadCount++
		}
	}
	return feed
}

func fromRequest(r *adoption.Request, role string) Notification {
	n := Notification{
		ID:        r.ID.String(),
		PetName:   r.PetName,
		Status:    r.Status,
		Read:      false,
		CreatedAt: r.CreatedAt,
	}
	if role == common.RoleShelter {
		n.Kind = KindNewRequest
		n.Title = "New Adoption Request"
		adopter := "Someone"
		if r.AdopterName != nil && *r.AdopterName != "" {
			adopter = *r.AdopterName
		}
		n.Message = fmt.Sprintf("%s wants to adopt %s", adopter, r.PetName)
	} else {
		n.Kind = KindRequestStatus
		n.Title = fmt.Sprintf("Request %s", r.Status)
		n.Message = fmt.Sprintf("Your adoption request for %s has been %s", r.PetName, r.Status)
	}
	return n
}
