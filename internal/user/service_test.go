package user

import (
	"context"
	"errors"
	"testing"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"petcare_backend/internal/common"
	"petcare_backend/internal/shared"
)

// MockRepository is a mock type for user.Repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil && u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByFirebaseUID(ctx context.Context, firebaseUID string) (*User, error) {
	args := m.Called(ctx, firebaseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func tokenWithClaims(uid string, claims map[string]interface{}) *firebaseauth.Token {
	return &firebaseauth.Token{UID: uid, Claims: claims}
}

func TestGetOrCreateUserFromFirebaseClaims_CreatesOnFirstSignIn(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("FindByFirebaseUID", ctx, "fb-uid-1").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)

	token := tokenWithClaims("fb-uid-1", map[string]interface{}{
		"email":   "sarah@example.com",
		"name":    "Sarah Johnson",
		"picture": "https://example.com/avatar.png",
	})
	u, isNew, err := service.GetOrCreateUserFromFirebaseClaims(ctx, token)

	assert.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "fb-uid-1", u.FirebaseUID)
	assert.NotNil(t, u.Email)
	assert.Equal(t, "sarah@example.com", *u.Email)
	assert.Equal(t, "Sarah", *u.FirstName)
	assert.Equal(t, "Johnson", *u.LastName)
	assert.Nil(t, u.Role, "a new user has no role until they choose one")
	repo.AssertExpectations(t)
}

func TestGetOrCreateUserFromFirebaseClaims_SingleWordName(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("FindByFirebaseUID", ctx, "fb-uid-2").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)

	u, _, err := service.GetOrCreateUserFromFirebaseClaims(ctx, tokenWithClaims("fb-uid-2", map[string]interface{}{
		"name": "Cher",
	}))

	assert.NoError(t, err)
	assert.Equal(t, "Cher", *u.FirstName)
	assert.Nil(t, u.LastName)
}

func TestGetOrCreateUserFromFirebaseClaims_ReturnsExisting(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, zap.NewNop())
	ctx := context.Background()

	role := common.RoleAdopter
	existing := &User{FirebaseUID: "fb-uid-1", Role: &role}
	existing.ID = uuid.New()

	repo.On("FindByFirebaseUID", ctx, "fb-uid-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	u, isNew, err := service.GetOrCreateUserFromFirebaseClaims(ctx, tokenWithClaims("fb-uid-1", map[string]interface{}{}))

	assert.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, existing.ID, u.ID)
	assert.NotNil(t, u.LastLoginAt)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestChooseRole_SetsRoleOnce(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, zap.NewNop())
	ctx := context.Background()

	u := &User{FirebaseUID: "fb-uid-1"}
	u.ID = uuid.New()
	session := shared.Session{UserID: u.ID}

	repo.On("FindByID", ctx, u.ID).Return(u, nil)
	repo.On("Update", ctx, u).Return(nil)

	updated, err := service.ChooseRole(ctx, session, common.RoleShelter)

	assert.NoError(t, err)
	assert.NotNil(t, updated.Role)
	assert.Equal(t, common.RoleShelter, *updated.Role)
	repo.AssertExpectations(t)
}

func TestChooseRole_SecondAttemptConflicts(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, zap.NewNop())
	ctx := context.Background()

	role := common.RoleAdopter
	u := &User{FirebaseUID: "fb-uid-1", Role: &role}
	u.ID = uuid.New()

	repo.On("FindByID", ctx, u.ID).Return(u, nil)

	// Even re-choosing the same role conflicts: the choice is permanent.
	updated, err := service.ChooseRole(ctx, shared.Session{UserID: u.ID}, common.RoleAdopter)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, common.ErrConflict))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChooseRole_InvalidRole(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, zap.NewNop())
	ctx := context.Background()

	updated, err := service.ChooseRole(ctx, shared.Session{UserID: uuid.New()}, "admin")

	assert.Nil(t, updated)
	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateProfile_OnlyProvidedFieldsChange(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, zap.NewNop())
	ctx := context.Background()

	firstName := "Sarah"
	phone := "555-0100"
	u := &User{FirebaseUID: "fb-uid-1", FirstName: &firstName, Phone: &phone}
	u.ID = uuid.New()

	repo.On("FindByID", ctx, u.ID).Return(u, nil)
	repo.On("Update", ctx, u).Return(nil)

	newLast := "Johnson"
	updated, err := service.UpdateProfile(ctx, shared.Session{UserID: u.ID}, UpdateProfileRequest{LastName: &newLast})

	assert.NoError(t, err)
	assert.Equal(t, "Sarah", *updated.FirstName)
	assert.Equal(t, "Johnson", *updated.LastName)
	assert.Equal(t, "555-0100", *updated.Phone)
}
