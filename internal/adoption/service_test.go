package adoption

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
	"petcare_backend/internal/pet"
	"petcare_backend/internal/shared"
)

// MockRepository is a mock type for adoption.Repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, r *Request) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil && r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Request), args.Error(1)
}

func (m *MockRepository) FindByAdopterID(ctx context.Context, adopterID uuid.UUID) ([]Request, error) {
	args := m.Called(ctx, adopterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Request), args.Error(1)
}

func (m *MockRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Request, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Request), args.Error(1)
}

func (m *MockRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) FindPendingByAdopterAndPet(ctx context.Context, adopterID, petID uuid.UUID) (*Request, error) {
	args := m.Called(ctx, adopterID, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Request), args.Error(1)
}

func (m *MockRepository) FindPendingByPetExcluding(ctx context.Context, petID, excludeID uuid.UUID) ([]Request, error) {
	args := m.Called(ctx, petID, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Request), args.Error(1)
}

func (m *MockRepository) FindAllPending(ctx context.Context) ([]Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Request), args.Error(1)
}

// MockPetService is a mock type for adoption.PetService.
type MockPetService struct {
	mock.Mock
}

func (m *MockPetService) GetByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.Pet), args.Error(1)
}

func (m *MockPetService) MarkUnavailable(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserService is a mock type for shared.Service.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, id uuid.UUID) (*shared.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.User), args.Error(1)
}

func (m *MockUserService) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*shared.User, error) {
	args := m.Called(ctx, firebaseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.User), args.Error(1)
}

func (m *MockUserService) GetOrCreateUserFromFirebaseClaims(ctx context.Context, token *firebaseauth.Token) (*shared.User, bool, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*shared.User), args.Bool(1), args.Error(2)
}

type adoptionServiceTestSuite struct {
	service     Service
	mockRepo    *MockRepository
	mockPets    *MockPetService
	mockUsers   *MockUserService
	ownerID     uuid.UUID
	adopterID   uuid.UUID
	testPet     *pet.Pet
	testAdopter *shared.User
}

func setupAdoptionServiceTestSuite(_ *testing.T) *adoptionServiceTestSuite {
	ts := &adoptionServiceTestSuite{
		mockRepo:  new(MockRepository),
		mockPets:  new(MockPetService),
		mockUsers: new(MockUserService),
		ownerID:   uuid.New(),
		adopterID: uuid.New(),
	}
	ts.service = NewService(ts.mockRepo, ts.mockPets, ts.mockUsers, zap.NewNop())

	ownerName := "Happy Paws Shelter"
	ts.testPet = &pet.Pet{
		Name:      "Max",
		Type:      pet.TypeDog,
		Status:    pet.StatusAvailable,
		OwnerID:   ts.ownerID,
		OwnerName: &ownerName,
	}
	ts.testPet.ID = uuid.New()

	firstName := "Sarah"
	lastName := "Johnson"
	email := "sarah@example.com"
	ts.testAdopter = &shared.User{
		ID:        ts.adopterID,
		FirstName: &firstName,
		LastName:  &lastName,
		Email:     &email,
	}
	return ts
}

func (ts *adoptionServiceTestSuite) adopterSession() shared.Session {
	return shared.Session{UserID: ts.adopterID, Role: common.RoleAdopter}
}

func (ts *adoptionServiceTestSuite) ownerSession() shared.Session {
	return shared.Session{UserID: ts.ownerID, Role: common.RoleShelter}
}

func TestSubmit_Success(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()

	ts.mockPets.On("GetByID", ctx, ts.testPet.ID).Return(ts.testPet, nil)
	ts.mockRepo.On("FindPendingByAdopterAndPet", ctx, ts.adopterID, ts.testPet.ID).Return(nil, gorm.ErrRecordNotFound)
	ts.mockUsers.On("GetUserByID", ctx, ts.adopterID).Return(ts.testAdopter, nil)
	ts.mockRepo.On("Create", ctx, mock.AnythingOfType("*adoption.Request")).Return(nil)

	request, err := ts.service.Submit(ctx, ts.adopterSession(), SubmitRequest{
		PetID:   ts.testPet.ID,
		Message: "  I have a big yard and time for walks.  ",
	})

	assert.NoError(t, err)
	assert.NotNil(t, request)
	assert.Equal(t, StatusPending, request.Status)
	assert.Equal(t, "I have a big yard and time for walks.", request.Message)
	assert.Equal(t, "Max", request.PetName)
	assert.Equal(t, ts.ownerID, request.OwnerID)
	assert.Equal(t, ts.adopterID, request.AdopterID)
	assert.NotNil(t, request.AdopterName)
	assert.Equal(t, "Sarah Johnson", *request.AdopterName)
	ts.mockRepo.AssertExpectations(t)
}

func TestSubmit_EmptyMessage_NoRowCreated(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()

	request, err := ts.service.Submit(ctx, ts.adopterSession(), SubmitRequest{
		PetID:   ts.testPet.ID,
		Message: "   ",
	})

	assert.Nil(t, request)
	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	ts.mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ts.mockPets.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSubmit_PetNotFound(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	missingID := uuid.New()

	ts.mockPets.On("GetByID", ctx, missingID).Return(nil, common.ErrNotFound.WithDetails("Pet not found."))

	request, err := ts.service.Submit(ctx, ts.adopterSession(), SubmitRequest{
		PetID:   missingID,
		Message: "Please",
	})

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, common.ErrNotFound))
	ts.mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_RequiresAdopterRole(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()

	ts.mockPets.On("GetByID", ctx, ts.testPet.ID).Return(ts.testPet, nil)

	otherShelter := shared.Session{UserID: uuid.New(), Role: common.RoleShelter}
	request, err := ts.service.Submit(ctx, otherShelter, SubmitRequest{
		PetID:   ts.testPet.ID,
		Message: "I want this pet.",
	})

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, common.ErrForbidden))
	ts.mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_OwnerCannotAdoptOwnPet(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()

	ts.mockPets.On("GetByID", ctx, ts.testPet.ID).Return(ts.testPet, nil)

	session := shared.Session{UserID: ts.ownerID, Role: common.RoleAdopter}
	request, err := ts.service.Submit(ctx, session, SubmitRequest{
		PetID:   ts.testPet.ID,
		Message: "My own pet.",
	})

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, common.ErrForbidden))
}

func TestSubmit_DuplicatePendingRequest_Conflict(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()

	existing := &Request{PetID: ts.testPet.ID, AdopterID: ts.adopterID, Status: StatusPending}
	ts.mockPets.On("GetByID", ctx, ts.testPet.ID).Return(ts.testPet, nil)
	ts.mockRepo.On("FindPendingByAdopterAndPet", ctx, ts.adopterID, ts.testPet.ID).Return(existing, nil)

	request, err := ts.service.Submit(ctx, ts.adopterSession(), SubmitRequest{
		PetID:   ts.testPet.ID,
		Message: "Again!",
	})

	assert.Nil(t, request)
	assert.True(t, errors.Is(err, common.ErrConflict))
	ts.mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func pendingRequest(ts *adoptionServiceTestSuite) *Request {
	r := &Request{
		PetID:     ts.testPet.ID,
		PetName:   "Max",
		PetType:   pet.TypeDog,
		AdopterID: ts.adopterID,
		OwnerID:   ts.ownerID,
		Message:   "Please!",
		Status:    StatusPending,
	}
	r.ID = uuid.New()
	return r
}

func TestApprove_Success_CascadesToPetAndSiblings(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	request := pendingRequest(ts)
	sibling := pendingRequest(ts)
	sibling.ID = uuid.New()
	sibling.AdopterID = uuid.New()

	ts.mockRepo.On("FindByID", ctx, request.ID).Return(request, nil)
	ts.mockRepo.On("UpdateStatusIfPending", ctx, request.ID, StatusApproved).Return(nil)
	ts.mockPets.On("MarkUnavailable", ctx, ts.testPet.ID).Return(nil)
	ts.mockRepo.On("FindPendingByPetExcluding", ctx, ts.testPet.ID, request.ID).Return([]Request{*sibling}, nil)
	ts.mockRepo.On("UpdateStatusIfPending", ctx, sibling.ID, StatusRejected).Return(nil)

	decided, err := ts.service.Approve(ctx, ts.ownerSession(), request.ID)

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, decided.Status)
	ts.mockRepo.AssertExpectations(t)
	ts.mockPets.AssertExpectations(t)
}

func TestApprove_CascadeFailureDoesNotFailDecision(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	request := pendingRequest(ts)

	ts.mockRepo.On("FindByID", ctx, request.ID).Return(request, nil)
	ts.mockRepo.On("UpdateStatusIfPending", ctx, request.ID, StatusApproved).Return(nil)
	ts.mockPets.On("MarkUnavailable", ctx, ts.testPet.ID).Return(errors.New("db down"))
	ts.mockRepo.On("FindPendingByPetExcluding", ctx, ts.testPet.ID, request.ID).Return(nil, errors.New("db down"))

	decided, err := ts.service.Approve(ctx, ts.ownerSession(), request.ID)

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, decided.Status)
}

func TestApprove_NonOwnerForbidden(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	request := pendingRequest(ts)

	ts.mockRepo.On("FindByID", ctx, request.ID).Return(request, nil)

	stranger := shared.Session{UserID: uuid.New(), Role: common.RoleShelter}
	decided, err := ts.service.Approve(ctx, stranger, request.ID)

	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, common.ErrForbidden))
	ts.mockRepo.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestApprove_AdopterForbidden(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	request := pendingRequest(ts)

	ts.mockRepo.On("FindByID", ctx, request.ID).Return(request, nil)

	decided, err := ts.service.Approve(ctx, ts.adopterSession(), request.ID)

	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, common.ErrForbidden))
}

func TestReject_AlreadyDecided_Conflict(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	request := pendingRequest(ts)
	request.Status = StatusApproved

	ts.mockRepo.On("FindByID", ctx, request.ID).Return(request, nil)

	decided, err := ts.service.Reject(ctx, ts.ownerSession(), request.ID)

	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, common.ErrConflict))
	ts.mockRepo.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestReject_LosesConcurrentRace_Conflict(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	request := pendingRequest(ts)

	// The read sees pending, but another session decides first and the
	// conditional write affects zero rows.
	ts.mockRepo.On("FindByID", ctx, request.ID).Return(request, nil)
	ts.mockRepo.On("UpdateStatusIfPending", ctx, request.ID, StatusRejected).Return(ErrNotPending)

	decided, err := ts.service.Reject(ctx, ts.ownerSession(), request.ID)

	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestReject_NotFound(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	missingID := uuid.New()

	ts.mockRepo.On("FindByID", ctx, missingID).Return(nil, gorm.ErrRecordNotFound)

	decided, err := ts.service.Reject(ctx, ts.ownerSession(), missingID)

	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestListForUser_AdopterSeesOwnRequests(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	rows := []Request{*pendingRequest(ts)}

	ts.mockRepo.On("FindByAdopterID", ctx, ts.adopterID).Return(rows, nil)

	requests, err := ts.service.ListForUser(ctx, ts.adopterID, common.RoleAdopter)

	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, ts.adopterID, requests[0].AdopterID)
	ts.mockRepo.AssertNotCalled(t, "FindByOwnerID", mock.Anything, mock.Anything)
}

func TestListForUser_ShelterSeesIncomingRequests(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()
	rows := []Request{*pendingRequest(ts)}

	ts.mockRepo.On("FindByOwnerID", ctx, ts.ownerID).Return(rows, nil)

	requests, err := ts.service.ListForUser(ctx, ts.ownerID, common.RoleShelter)

	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, ts.ownerID, requests[0].OwnerID)
	ts.mockRepo.AssertNotCalled(t, "FindByAdopterID", mock.Anything, mock.Anything)
}

func TestListForUser_NoRole_EmptyList(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()

	requests, err := ts.service.ListForUser(ctx, ts.adopterID, "")

	assert.NoError(t, err)
	assert.Empty(t, requests)
}

func TestRejectOrphaned_SweepsRequestsWithMissingPets(t *testing.T) {
	ts := setupAdoptionServiceTestSuite(t)
	ctx := context.Background()

	orphan := pendingRequest(ts)
	orphan.PetID = uuid.New()
	alive := pendingRequest(ts)

	ts.mockRepo.On("FindAllPending", ctx).Return([]Request{*orphan, *alive}, nil)
	ts.mockPets.On("GetByID", ctx, orphan.PetID).Return(nil, common.ErrNotFound.WithDetails("Pet not found."))
	ts.mockPets.On("GetByID", ctx, alive.PetID).Return(ts.testPet, nil)
	ts.mockRepo.On("UpdateStatusIfPending", ctx, orphan.ID, StatusRejected).Return(nil)

	swept, err := ts.service.RejectOrphaned(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, swept)
	ts.mockRepo.AssertNotCalled(t, "UpdateStatusIfPending", ctx, alive.ID, StatusRejected)
}
