package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/model"
)

// MockCartRepository is a mock implementation of CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) FindByUserIDWithLines(ctx context.Context, userID uint) (*model.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) IncrementLine(ctx context.Context, cartID, tourID uint) (bool, error) {
	args := m.Called(ctx, cartID, tourID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) InsertLine(ctx context.Context, line *model.CartLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartRepository) FindLine(ctx context.Context, cartID, tourID uint) (*model.CartLine, error) {
	args := m.Called(ctx, cartID, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartLine), args.Error(1)
}

func (m *MockCartRepository) FindLineByID(ctx context.Context, lineID uint) (*model.CartLine, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartLine), args.Error(1)
}

func (m *MockCartRepository) DeleteLine(ctx context.Context, lineID uint) error {
	args := m.Called(ctx, lineID)
	return args.Error(0)
}

func (m *MockCartRepository) CountLinesByTour(ctx context.Context, tourID uint) (int64, error) {
	args := m.Called(ctx, tourID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTourRepository is a mock implementation of TourRepository.
type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) Create(ctx context.Context, tour *model.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) Update(ctx context.Context, tour *model.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTourRepository) FindByID(ctx context.Context, id uint) (*model.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *MockTourRepository) List(ctx context.Context) ([]model.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tour), args.Error(1)
}

func (m *MockTourRepository) CountByCity(ctx context.Context, cityID uint) (int64, error) {
	args := m.Called(ctx, cityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTourRepository) CountByHotel(ctx context.Context, hotelID uint) (int64, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTourRepository) CountByClient(ctx context.Context, clientID uint) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCartService_AddToCart(t *testing.T) {
	tour := &model.Tour{ID: 7, Name: "Prague City Break", Price: decimal.NewFromInt(449)}

	tests := []struct {
		name          string
		setupMock     func(*MockCartRepository, *MockTourRepository)
		expectedError error
		expectedQty   int
	}{
		{
			name: "first add creates cart and a quantity-1 line",
			setupMock: func(mCart *MockCartRepository, mTour *MockTourRepository) {
				mTour.On("FindByID", mock.Anything, uint(7)).Return(tour, nil)
				mCart.On("GetOrCreate", mock.Anything, uint(3)).Return(&model.Cart{ID: 1, UserID: 3}, nil)
				mCart.On("IncrementLine", mock.Anything, uint(1), uint(7)).Return(false, nil)
				mCart.On("InsertLine", mock.Anything, mock.AnythingOfType("*model.CartLine")).Return(nil)
			},
			expectedQty: 1,
		},
		{
			name: "repeated add increments the existing line instead of inserting a sibling",
			setupMock: func(mCart *MockCartRepository, mTour *MockTourRepository) {
				mTour.On("FindByID", mock.Anything, uint(7)).Return(tour, nil)
				mCart.On("GetOrCreate", mock.Anything, uint(3)).Return(&model.Cart{ID: 1, UserID: 3}, nil)
				mCart.On("IncrementLine", mock.Anything, uint(1), uint(7)).Return(true, nil)
				mCart.On("FindLine", mock.Anything, uint(1), uint(7)).
					Return(&model.CartLine{ID: 11, CartID: 1, TourID: 7, Quantity: 2}, nil)
			},
			expectedQty: 2,
		},
		{
			name: "losing the first-add race falls back to an increment",
			setupMock: func(mCart *MockCartRepository, mTour *MockTourRepository) {
				mTour.On("FindByID", mock.Anything, uint(7)).Return(tour, nil)
				mCart.On("GetOrCreate", mock.Anything, uint(3)).Return(&model.Cart{ID: 1, UserID: 3}, nil)
				mCart.On("IncrementLine", mock.Anything, uint(1), uint(7)).Return(false, nil).Once()
				mCart.On("InsertLine", mock.Anything, mock.AnythingOfType("*model.CartLine")).
					Return(gorm.ErrDuplicatedKey)
				mCart.On("IncrementLine", mock.Anything, uint(1), uint(7)).Return(true, nil).Once()
				mCart.On("FindLine", mock.Anything, uint(1), uint(7)).
					Return(&model.CartLine{ID: 11, CartID: 1, TourID: 7, Quantity: 2}, nil)
			},
			expectedQty: 2,
		},
		{
			name: "unknown tour is rejected before any cart work",
			setupMock: func(mCart *MockCartRepository, mTour *MockTourRepository) {
				mTour.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTourNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCartRepo := new(MockCartRepository)
			mockTourRepo := new(MockTourRepository)
			tt.setupMock(mockCartRepo, mockTourRepo)

			service := NewCartService(mockCartRepo, mockTourRepo)
			line, err := service.AddToCart(context.Background(), 3, 7)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, line)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, line)
				assert.Equal(t, tt.expectedQty, line.Quantity)
			}

			mockCartRepo.AssertExpectations(t)
			mockTourRepo.AssertExpectations(t)
		})
	}
}

func TestCartService_RemoveFromCart(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockCartRepository)
		expectedError error
	}{
		{
			name: "owner removes their line",
			setupMock: func(mCart *MockCartRepository) {
				mCart.On("FindLineByID", mock.Anything, uint(11)).
					Return(&model.CartLine{ID: 11, CartID: 1, TourID: 7, Quantity: 2}, nil)
				mCart.On("FindByUserID", mock.Anything, uint(3)).Return(&model.Cart{ID: 1, UserID: 3}, nil)
				mCart.On("DeleteLine", mock.Anything, uint(11)).Return(nil)
			},
		},
		{
			name: "foreign line is forbidden and never deleted",
			setupMock: func(mCart *MockCartRepository) {
				mCart.On("FindLineByID", mock.Anything, uint(11)).
					Return(&model.CartLine{ID: 11, CartID: 99, TourID: 7, Quantity: 2}, nil)
				mCart.On("FindByUserID", mock.Anything, uint(3)).Return(&model.Cart{ID: 1, UserID: 3}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name: "caller without a cart cannot own any line",
			setupMock: func(mCart *MockCartRepository) {
				mCart.On("FindLineByID", mock.Anything, uint(11)).
					Return(&model.CartLine{ID: 11, CartID: 99, TourID: 7, Quantity: 2}, nil)
				mCart.On("FindByUserID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name: "missing line reports not found",
			setupMock: func(mCart *MockCartRepository) {
				mCart.On("FindLineByID", mock.Anything, uint(11)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCartLineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCartRepo := new(MockCartRepository)
			tt.setupMock(mockCartRepo)

			service := NewCartService(mockCartRepo, new(MockTourRepository))
			err := service.RemoveFromCart(context.Background(), 3, 11)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			// AssertExpectations also proves DeleteLine was never reached in
			// the forbidden cases.
			mockCartRepo.AssertExpectations(t)
		})
	}
}

func TestCartService_ViewCart(t *testing.T) {
	t.Run("user without a cart gets an empty view, not an error", func(t *testing.T) {
		mockCartRepo := new(MockCartRepository)
		mockCartRepo.On("FindByUserIDWithLines", mock.Anything, uint(3)).
			Return(nil, gorm.ErrRecordNotFound)

		service := NewCartService(mockCartRepo, new(MockTourRepository))
		view, err := service.ViewCart(context.Background(), 3)

		assert.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.True(t, view.Total.IsZero())
		mockCartRepo.AssertExpectations(t)
	})

	t.Run("total is the sum of price times quantity over all lines", func(t *testing.T) {
		cart := &model.Cart{
			ID:     1,
			UserID: 3,
			Lines: []model.CartLine{
				{ID: 11, CartID: 1, TourID: 7, Quantity: 2, Tour: model.Tour{ID: 7, Price: decimal.NewFromInt(100)}},
				{ID: 12, CartID: 1, TourID: 8, Quantity: 1, Tour: model.Tour{ID: 8, Price: decimal.NewFromInt(50)}},
			},
		}
		mockCartRepo := new(MockCartRepository)
		mockCartRepo.On("FindByUserIDWithLines", mock.Anything, uint(3)).Return(cart, nil)

		service := NewCartService(mockCartRepo, new(MockTourRepository))
		view, err := service.ViewCart(context.Background(), 3)

		assert.NoError(t, err)
		assert.Len(t, view.Lines, 2)
		assert.True(t, decimal.NewFromInt(200).Equal(view.Lines[0].Subtotal))
		assert.True(t, decimal.NewFromInt(250).Equal(view.Total))
		mockCartRepo.AssertExpectations(t)
	})
}
