package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/loansim/loan_simulation_api/internal/apperrors"
	"github.com/loansim/loan_simulation_api/internal/core/domain"
	portssvc "github.com/loansim/loan_simulation_api/internal/core/ports/services"
	"github.com/loansim/loan_simulation_api/internal/core/services"
	"github.com/loansim/loan_simulation_api/internal/dto"
	"github.com/loansim/loan_simulation_api/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "analyst",
		Name:     "Analyst",
		Email:    "analyst@example.com",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		// the stored credential must be a verifiable hash, never the plaintext
		return u.Username == req.Username &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(int64(3), nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(3), user.ID)
	suite.Equal(req.Email, user.Email)
	suite.WithinDuration(time.Now(), user.CreatedAt, 5*time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "analyst",
		Name:     "Analyst",
		Email:    "analyst@example.com",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(int64(0), apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{ID: 1, Username: "analyst", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "analyst").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "analyst", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(int64(1), user.ID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{ID: 1, Username: "analyst", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "analyst").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "analyst", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserIsUnauthorized() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	// unknown user and bad password are indistinguishable to the caller
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
