package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"petcare_backend/internal/adoption"
	"petcare_backend/internal/common"
)

// MockRequestLister is a mock type for notification.RequestLister.
type MockRequestLister struct {
	mock.Mock
}

func (m *MockRequestLister) ListForUser(ctx context.Context, userID uuid.UUID, role string) ([]adoption.Request, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]adoption.Request), args.Error(1)
}

func newRequest(petName, adopterName, status string, createdAt time.Time) adoption.Request {
	r := adoption.Request{
		PetName:     petName,
		PetType:     "Dog",
		AdopterName: &adopterName,
		Status:      status,
	}
	r.ID = uuid.New()
	r.CreatedAt = createdAt
	return r
}

func TestGetFeedForUser_AdopterMapping(t *testing.T) {
	lister := new(MockRequestLister)
	service := NewService(lister, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	now := time.Now()
	requests := []adoption.Request{
		newRequest("Max", "Sarah Johnson", adoption.StatusApproved, now),
		newRequest("Luna", "Sarah Johnson", adoption.StatusPending, now.Add(-time.Hour)),
	}
	lister.On("ListForUser", ctx, userID, common.RoleAdopter).Return(requests, nil)

	feed := service.GetFeedForUser(ctx, userID, common.RoleAdopter)

	assert.Len(t, feed.Notifications, 2)

	approved := feed.Notifications[0]
	assert.Equal(t, KindRequestStatus, approved.Kind)
	assert.Equal(t, "Request approved", approved.Title)
	assert.Equal(t, "Your adoption request for Max has been approved", approved.Message)
	assert.False(t, approved.Read)

	pending := feed.Notifications[1]
	assert.Equal(t, "Request pending", pending.Title)
	assert.Equal(t, "Your adoption request for Luna has been pending", pending.Message)

	assert.Equal(t, 1, feed.UnreadCount, "only the pending request counts as unread")
}

func TestGetFeedForUser_ShelterMapping(t *testing.T) {
	lister := new(MockRequestLister)
	service := NewService(lister, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	requests := []adoption.Request{
		newRequest("Max", "Sarah Johnson", adoption.StatusPending, time.Now()),
	}
	lister.On("ListForUser", ctx, userID, common.RoleShelter).Return(requests, nil)

	feed := service.GetFeedForUser(ctx, userID, common.RoleShelter)

	assert.Len(t, feed.Notifications, 1)
	n := feed.Notifications[0]
	assert.Equal(t, KindNewRequest, n.Kind)
	assert.Equal(t, "New Adoption Request", n.Title)
	assert.Equal(t, "Sarah Johnson wants to adopt Max", n.Message)
	assert.Equal(t, 1, feed.UnreadCount)
}

func TestGetFeedForUser_ShelterMapping_MissingAdopterName(t *testing.T) {
	lister := new(MockRequestLister)
	service := NewService(lister, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	r := adoption.Request{PetName: "Max", Status: adoption.StatusPending}
	r.ID = uuid.New()
	lister.On("ListForUser", ctx, userID, common.RoleShelter).Return([]adoption.Request{r}, nil)

	feed := service.GetFeedForUser(ctx, userID, common.RoleShelter)

	assert.Equal(t, "Someone wants to adopt Max", feed.Notifications[0].Message)
}

func TestGetFeedForUser_Idempotent(t *testing.T) {
	lister := new(MockRequestLister)
	service := NewService(lister, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	requests := []adoption.Request{
		newRequest("Max", "Sarah Johnson", adoption.StatusRejected, time.Now()),
	}
	lister.On("ListForUser", ctx, userID, common.RoleAdopter).Return(requests, nil)

	first := service.GetFeedForUser(ctx, userID, common.RoleAdopter)
	second := service.GetFeedForUser(ctx, userID, common.RoleAdopter)

	assert.Equal(t, first, second)
}

func TestGetFeedForUser_ReadFailure_EmptyFeed(t *testing.T) {
	lister := new(MockRequestLister)
	service := NewService(lister, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	lister.On("ListForUser", ctx, userID, common.RoleAdopter).Return(nil, errors.New("store unavailable"))

	feed := service.GetFeedForUser(ctx, userID, common.RoleAdopter)

	assert.NotNil(t, feed.Notifications)
	assert.Empty(t, feed.Notifications)
	assert.Equal(t, 0, feed.UnreadCount)
}
