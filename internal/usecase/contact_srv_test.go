package usecase_test

import (
	"context"
	"testing"

	"riget-zoo/internal/data/entity"
	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepo) List(ctx context.Context) ([]*entity.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Contact), args.Error(1)
}

func TestContactSubmitStoresMessage(t *testing.T) {
	contactRepo := new(MockContactRepo)
	service := usecase.NewContactService(contactRepo, zap.NewNop())

	contactRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Contact).ID = 5
		}).
		Return(nil)

	resp, err := service.Submit(context.Background(), nil, &request.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Opening hours",
		Message: "Are you open on bank holidays?",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	contactRepo.AssertExpectations(t)
}

func TestContactSubmitUsesSessionIdentity(t *testing.T) {
	contactRepo := new(MockContactRepo)
	service := usecase.NewContactService(contactRepo, zap.NewNop())

	contactRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Contact")).
		Run(func(args mock.Arguments) {
			contact := args.Get(1).(*entity.Contact)
			assert.Equal(t, "Alice Smith", contact.Name)
			assert.Equal(t, "alice@example.com", contact.Email)
		}).
		Return(nil)

	identity := &entity.Identity{
		UserID:    7,
		Email:     "alice@example.com",
		FirstName: "Alice",
		Surname:   "Smith",
	}

	_, err := service.Submit(context.Background(), identity, &request.ContactRequest{
		Name:    "Someone Else",
		Email:   "bogus@example.com",
		Subject: "Membership",
		Message: "How do I renew?",
	})

	require.NoError(t, err)
	contactRepo.AssertExpectations(t)
}

func TestContactSubmitHoneypotRejected(t *testing.T) {
	contactRepo := new(MockContactRepo)
	service := usecase.NewContactService(contactRepo, zap.NewNop())

	_, err := service.Submit(context.Background(), nil, &request.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Hi",
		Phone:   "555-0100",
	})

	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Rules, "Bot detection triggered")
	contactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactSubmitCollectsAllViolations(t *testing.T) {
	contactRepo := new(MockContactRepo)
	service := usecase.NewContactService(contactRepo, zap.NewNop())

	_, err := service.Submit(context.Background(), nil, &request.ContactRequest{
		Email: "not-an-email",
	})

	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Rules, "Name required")
	assert.Contains(t, vErr.Rules, "Valid email required")
	assert.Contains(t, vErr.Rules, "Subject required")
	assert.Contains(t, vErr.Rules, "Message required")
}
