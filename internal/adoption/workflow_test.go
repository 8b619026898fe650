package adoption_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"petcare_backend/internal/adoption"
	"petcare_backend/internal/common"
	"petcare_backend/internal/notification"
	"petcare_backend/internal/pet"
	"petcare_backend/internal/shared"
	"petcare_backend/internal/user"
)

// The tests below run the real services against an in-memory database to
// cover the whole request lifecycle, not just one layer.

type workflow struct {
	db            *gorm.DB
	users         user.Service
	pets          pet.Service
	requests      adoption.Service
	notifications notification.Service

	shelter shared.Session
	adopter shared.Session
}

func newWorkflow(t *testing.T) *workflow {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &pet.Pet{}, &adoption.Request{}))

	log := zap.NewNop()
	userService := user.NewService(user.NewGORMRepository(db), log)
	petService := pet.NewService(pet.NewGORMRepository(db), userService, log)
	adoptionService := adoption.NewService(adoption.NewGORMRepository(db), petService, userService, log)
	notificationService := notification.NewService(adoptionService, log)

	w := &workflow{
		db:            db,
		users:         userService,
		pets:          petService,
		requests:      adoptionService,
		notifications: notificationService,
	}
	w.shelter = w.newUser(t, "Happy Paws", common.RoleShelter)
	w.adopter = w.newUser(t, "Sarah", common.RoleAdopter)
	return w
}

func (w *workflow) newUser(t *testing.T, firstName, role string) shared.Session {
	t.Helper()
	u := &user.User{FirebaseUID: "fb-" + firstName, FirstName: &firstName, Role: &role}
	require.NoError(t, w.db.Create(u).Error)
	return shared.Session{UserID: u.ID, Role: role}
}

func (w *workflow) newPet(t *testing.T, name string) *pet.Pet {
	t.Helper()
	p, err := w.pets.Create(context.Background(), w.shelter, pet.CreatePetRequest{Name: name, Type: pet.TypeDog})
	require.NoError(t, err)
	return p
}

func TestWorkflow_SubmitThenApprove(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()
	p := w.newPet(t, "Max")

	request, err := w.requests.Submit(ctx, w.adopter, adoption.SubmitRequest{PetID: p.ID, Message: "I'd love to adopt Max."})
	require.NoError(t, err)
	assert.Equal(t, adoption.StatusPending, request.Status)
	assert.Equal(t, "Max", request.PetName)

	// The shelter sees the request in its list and feed.
	incoming, err := w.requests.ListForUser(ctx, w.shelter.UserID, common.RoleShelter)
	require.NoError(t, err)
	require.Len(t, incoming, 1)

	feed := w.notifications.GetFeedForUser(ctx, w.shelter.UserID, common.RoleShelter)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, "Sarah wants to adopt Max", feed.Notifications[0].Message)
	assert.Equal(t, 1, feed.UnreadCount)

	decided, err := w.requests.Approve(ctx, w.shelter, request.ID)
	require.NoError(t, err)
	assert.Equal(t, adoption.StatusApproved, decided.Status)

	// Approval takes the pet off the market.
	reloaded, err := w.pets.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, pet.StatusUnavailable, reloaded.Status)

	// The adopter's feed reflects the decision and nothing is pending.
	adopterFeed := w.notifications.GetFeedForUser(ctx, w.adopter.UserID, common.RoleAdopter)
	require.Len(t, adopterFeed.Notifications, 1)
	assert.Equal(t, "Your adoption request for Max has been approved", adopterFeed.Notifications[0].Message)
	assert.Equal(t, 0, adopterFeed.UnreadCount)

	// A decided request cannot be decided again.
	_, err = w.requests.Reject(ctx, w.shelter, request.ID)
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestWorkflow_ApproveRejectsSiblingRequests(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()
	p := w.newPet(t, "Max")
	secondAdopter := w.newUser(t, "Emma", common.RoleAdopter)

	first, err := w.requests.Submit(ctx, w.adopter, adoption.SubmitRequest{PetID: p.ID, Message: "Me first!"})
	require.NoError(t, err)
	second, err := w.requests.Submit(ctx, secondAdopter, adoption.SubmitRequest{PetID: p.ID, Message: "Me too!"})
	require.NoError(t, err)

	_, err = w.requests.Approve(ctx, w.shelter, first.ID)
	require.NoError(t, err)

	losing, err := w.requests.ListForUser(ctx, secondAdopter.UserID, common.RoleAdopter)
	require.NoError(t, err)
	require.Len(t, losing, 1)
	assert.Equal(t, second.ID, losing[0].ID)
	assert.Equal(t, adoption.StatusRejected, losing[0].Status)
}

func TestWorkflow_DuplicatePendingSubmitConflicts(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()
	p := w.newPet(t, "Max")

	_, err := w.requests.Submit(ctx, w.adopter, adoption.SubmitRequest{PetID: p.ID, Message: "First."})
	require.NoError(t, err)

	_, err = w.requests.Submit(ctx, w.adopter, adoption.SubmitRequest{PetID: p.ID, Message: "Second."})
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestWorkflow_RejectOrphanedAfterPetDeleted(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()
	p := w.newPet(t, "Max")

	request, err := w.requests.Submit(ctx, w.adopter, adoption.SubmitRequest{PetID: p.ID, Message: "Please."})
	require.NoError(t, err)

	require.NoError(t, w.pets.Delete(ctx, w.shelter, p.ID))

	swept, err := w.requests.RejectOrphaned(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	remaining, err := w.requests.ListForUser(ctx, w.adopter.UserID, common.RoleAdopter)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, request.ID, remaining[0].ID)
	assert.Equal(t, adoption.StatusRejected, remaining[0].Status)
}
