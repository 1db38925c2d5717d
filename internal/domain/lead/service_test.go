package lead

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, l *Lead) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Lead), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Lead), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, l *Lead) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockRepository) List(ctx context.Context, status *Status, limit, offset int) ([]Lead, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]Lead), args.Get(1).(int64), args.Error(2)
}

func TestSubmit_CreatesNewLead(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "cto@acme.com").Return(nil, ErrLeadNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*lead.Lead")).Return(nil)

	l, err := svc.Submit(ctx, &SubmitLeadRequest{
		ContactName:  "Pat Smith",
		ContactEmail: "cto@acme.com",
		CompanyName:  "Acme",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusNew, l.Status)
	assert.Equal(t, "website", l.Source)
	repo.AssertExpectations(t)
}

func TestSubmit_ReturnsOpenLeadForSameEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	open := &Lead{ID: 5, ContactEmail: "cto@acme.com", Status: StatusContacted}
	repo.On("GetByEmail", ctx, "cto@acme.com").Return(open, nil)

	l, err := svc.Submit(ctx, &SubmitLeadRequest{ContactEmail: "cto@acme.com"})
	require.NoError(t, err)

	assert.Equal(t, int64(5), l.ID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_ConvertedLeadDoesNotBlockNewOne(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	converted := &Lead{ID: 5, ContactEmail: "cto@acme.com", Status: StatusConverted}
	repo.On("GetByEmail", ctx, "cto@acme.com").Return(converted, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*lead.Lead")).Return(nil)

	l, err := svc.Submit(ctx, &SubmitLeadRequest{ContactEmail: "cto@acme.com", Source: "referral"})
	require.NoError(t, err)

	assert.Equal(t, StatusNew, l.Status)
	assert.Equal(t, "referral", l.Source)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_MovesThroughWorkflow(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&Lead{ID: 1, Status: StatusNew}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*lead.Lead")).Return(nil)

	l, err := svc.UpdateStatus(ctx, 1, StatusQualified, "strong fit")
	require.NoError(t, err)

	assert.Equal(t, StatusQualified, l.Status)
	assert.Equal(t, "strong fit", l.Notes)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, Status("archived"), "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateStatus_ConvertedIsFinal(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(2)).Return(&Lead{ID: 2, Status: StatusConverted}, nil)

	_, err := svc.UpdateStatus(ctx, 2, StatusRejected, "")
	assert.ErrorIs(t, err, ErrAlreadyConverted)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
