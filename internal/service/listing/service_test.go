package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

type mockCompanyRepo struct {
	mock.Mock
}

func (m *mockCompanyRepo) ListActive(ctx context.Context, limit int) ([]*domain.Company, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Company), args.Error(1)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) ListActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Service, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func companies(n int) []*domain.Company {
	out := make([]*domain.Company, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &domain.Company{ID: uuid.New(), Name: "Company"})
	}
	return out
}

func TestService_ListFeatured_NoCompaniesNoServiceQueries(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	serviceRepo := new(mockServiceRepo)
	companyRepo.On("ListActive", mock.Anything, domain.DefaultFeaturedCompaniesLimit).Return([]*domain.Company{}, nil)

	featured, err := NewService(companyRepo, serviceRepo, 0, false, nopLogger{}).ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Empty(t, featured.Companies)
	serviceRepo.AssertNotCalled(t, "ListActiveByCompany", mock.Anything, mock.Anything)
}

func TestService_ListFeatured_KeepsCompanyOrder(t *testing.T) {
	list := companies(3)
	companyRepo := new(mockCompanyRepo)
	serviceRepo := new(mockServiceRepo)
	companyRepo.On("ListActive", mock.Anything, 6).Return(list, nil)
	for i, c := range list {
		serviceRepo.On("ListActiveByCompany", mock.Anything, c.ID).
			Return(make([]*domain.Service, i+1), nil).Once()
	}

	featured, err := NewService(companyRepo, serviceRepo, 6, false, nopLogger{}).ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured.Companies, 3)
	for i, item := range featured.Companies {
		assert.Equal(t, list[i].ID, item.Company.ID)
		assert.Len(t, item.Services, i+1)
	}
	assert.False(t, featured.Partial())
	serviceRepo.AssertExpectations(t)
}

func TestService_ListFeatured_AllOrNothing(t *testing.T) {
	list := companies(3)
	companyRepo := new(mockCompanyRepo)
	serviceRepo := new(mockServiceRepo)
	companyRepo.On("ListActive", mock.Anything, 6).Return(list, nil)
	serviceRepo.On("ListActiveByCompany", mock.Anything, list[0].ID).Return([]*domain.Service{}, nil).Maybe()
	serviceRepo.On("ListActiveByCompany", mock.Anything, list[1].ID).Return(nil, errors.New("timeout"))
	serviceRepo.On("ListActiveByCompany", mock.Anything, list[2].ID).Return([]*domain.Service{}, nil).Maybe()

	featured, err := NewService(companyRepo, serviceRepo, 6, false, nopLogger{}).ListFeatured(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.Nil(t, featured)
}

func TestService_ListFeatured_Partial(t *testing.T) {
	list := companies(3)
	companyRepo := new(mockCompanyRepo)
	serviceRepo := new(mockServiceRepo)
	companyRepo.On("ListActive", mock.Anything, 6).Return(list, nil)
	serviceRepo.On("ListActiveByCompany", mock.Anything, list[0].ID).Return([]*domain.Service{{Name: "A"}}, nil)
	serviceRepo.On("ListActiveByCompany", mock.Anything, list[1].ID).Return(nil, errors.New("timeout"))
	serviceRepo.On("ListActiveByCompany", mock.Anything, list[2].ID).Return([]*domain.Service{{Name: "C"}}, nil)

	featured, err := NewService(companyRepo, serviceRepo, 6, true, nopLogger{}).ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured.Companies, 3)
	assert.True(t, featured.Partial())
	assert.Equal(t, []uuid.UUID{list[1].ID}, featured.FailedCompanyIDs)
	assert.Empty(t, featured.Companies[1].Services)
	assert.Len(t, featured.Companies[2].Services, 1)
}

func TestService_ListFeatured_CompanyQueryError(t *testing.T) {
	companyRepo := new(mockCompanyRepo)
	companyRepo.On("ListActive", mock.Anything, 6).Return(nil, errors.New("db down"))

	_, err := NewService(companyRepo, new(mockServiceRepo), 6, true, nopLogger{}).ListFeatured(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailed)
}
