package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"dinoreserve/config"
	kafkaMocks "dinoreserve/infras/kafka/mocks"
	"dinoreserve/infras/otel/mocks"
	reservationMocks "dinoreserve/internal/domains/reservation/mocks"
	"dinoreserve/internal/domains/reservation/model"
	"dinoreserve/internal/domains/reservation/model/dto"
	"dinoreserve/internal/domains/reservation/repository"
	"dinoreserve/internal/domains/reservation/service"
	tableMocks "dinoreserve/internal/domains/table/mocks"
	tableModel "dinoreserve/internal/domains/table/model"
	cacheMocks "dinoreserve/shared/cache/mocks"
	"dinoreserve/shared/constant"
	gDto "dinoreserve/shared/dto"
	"dinoreserve/shared/failure"
	gModel "dinoreserve/shared/model"
	"dinoreserve/shared/timezone"
)

func newReservation(id, tableID, status string) model.Reservation {
	return model.Reservation{
		ID:              id,
		TableID:         tableID,
		RestaurantID:    "restaurant-id",
		TableNumber:     7,
		CustomerName:    "Rex Arms",
		CustomerPhone:   "+15550001111",
		PartySize:       2,
		ReservationTime: timezone.Now(),
		Status:          status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Events and cache invalidation run asynchronously after the write.
	mockEvents.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockTableRepo, cfg, mockCache, mockOtel, mockEvents)

	table := tableModel.Table{
		ID:           "table-id",
		RestaurantID: "restaurant-id",
		TableNumber:  7,
		Capacity:     4,
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateReservationRequest{
				TableID:         "table-id",
				CustomerName:    "Rex Arms",
				CustomerPhone:   "+15550001111",
				PartySize:       2,
				ReservationTime: "2026-09-01T19:00:00Z",
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(table, nil)

				mockRepo.EXPECT().
					InsertActive(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "table not found",
			req: dto.CreateReservationRequest{
				TableID:         "missing-table",
				CustomerName:    "Rex Arms",
				CustomerPhone:   "+15550001111",
				PartySize:       2,
				ReservationTime: "2026-09-01T19:00:00Z",
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tableModel.Table{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "party size exceeds capacity",
			req: dto.CreateReservationRequest{
				TableID:         "table-id",
				CustomerName:    "Rex Arms",
				CustomerPhone:   "+15550001111",
				PartySize:       9,
				ReservationTime: "2026-09-01T19:00:00Z",
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(table, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid reservation time",
			req: dto.CreateReservationRequest{
				TableID:         "table-id",
				CustomerName:    "Rex Arms",
				CustomerPhone:   "+15550001111",
				PartySize:       2,
				ReservationTime: "next friday at eight",
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(table, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "table already reserved",
			req: dto.CreateReservationRequest{
				TableID:         "table-id",
				CustomerName:    "Rex Arms",
				CustomerPhone:   "+15550001111",
				PartySize:       2,
				ReservationTime: "2026-09-01T19:00:00Z",
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(table, nil)

				mockRepo.EXPECT().
					InsertActive(gomock.Any(), gomock.Any()).
					Return(repository.ErrTableAlreadyReserved)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req: dto.CreateReservationRequest{
				TableID:         "table-id",
				CustomerName:    "Rex Arms",
				CustomerPhone:   "+15550001111",
				PartySize:       2,
				ReservationTime: "2026-09-01T19:00:00Z",
			},
			setupMock: func() {
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(table, nil)

				mockRepo.EXPECT().
					InsertActive(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, tt.req.TableID, result.TableID)
				assert.Equal(t, table.RestaurantID, result.RestaurantID)
				assert.Equal(t, table.TableNumber, result.TableNumber)
				assert.Equal(t, model.StatusReserved, result.Status)
			}
		})
	}
}

func TestReservationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockTableRepo, cfg, mockCache, mockOtel, mockEvents)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		filter     gDto.FilterGroup
		setupMock  func()
		wantErr    bool
		wantResult dto.GetReservationsResponse
	}{
		{
			name: "successful get all",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Reservation{newReservation("test-id", "table-id", model.StatusReserved)}, nil)
			},
			wantErr: false,
			wantResult: dto.GetReservationsResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name: "cache hit",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "count error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAll(ctx, tt.params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockTableRepo, cfg, mockCache, mockOtel, mockEvents)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "test-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "test-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newReservation("test-id", "table-id", model.StatusReserved), nil)
			},
			wantErr: false,
			wantID:  "test-id",
		},
		{
			name: "reservation not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   "test-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestReservationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockEvents.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockTableRepo, cfg, mockCache, mockOtel, mockEvents)

	table := tableModel.Table{
		ID:           "table-id",
		RestaurantID: "restaurant-id",
		TableNumber:  7,
		Capacity:     4,
	}

	tests := []struct {
		name      string
		req       dto.UpdateReservationRequest
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req: dto.UpdateReservationRequest{
				CustomerName: "Tricera Tops",
				PartySize:    3,
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newReservation("test-id", "table-id", model.StatusReserved), nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(table, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				updated := newReservation("test-id", "table-id", model.StatusReserved)
				updated.CustomerName = "Tricera Tops"
				updated.PartySize = 3

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(updated, nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateReservationRequest{},
			id:        "test-id",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "reservation not found",
			req: dto.UpdateReservationRequest{
				CustomerName: "Tricera Tops",
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancelled reservation cannot be modified",
			req: dto.UpdateReservationRequest{
				CustomerName: "Tricera Tops",
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newReservation("test-id", "table-id", model.StatusCancelled), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "party size exceeds capacity",
			req: dto.UpdateReservationRequest{
				PartySize: 9,
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newReservation("test-id", "table-id", model.StatusReserved), nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(table, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid reservation time",
			req: dto.UpdateReservationRequest{
				ReservationTime: "tomorrow evening",
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newReservation("test-id", "table-id", model.StatusReserved), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "update error",
			req: dto.UpdateReservationRequest{
				CustomerName: "Tricera Tops",
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newReservation("test-id", "table-id", model.StatusReserved), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, result.ID)
				assert.Equal(t, tt.req.CustomerName, result.CustomerName)
			}
		})
	}
}

func TestReservationService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockEvents.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockTableRepo, cfg, mockCache, mockOtel, mockEvents)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancellation",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newReservation("test-id", "table-id", model.StatusReserved), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "already cancelled is a no-op",
			id:   "test-id",
			setupMock: func() {
				// No Update expected: cancelling twice must not touch the row.
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newReservation("test-id", "table-id", model.StatusCancelled), nil)
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newReservation("test-id", "table-id", model.StatusReserved), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
