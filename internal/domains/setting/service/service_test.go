package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/setting/model"
	"frontdesk/internal/domains/setting/model/dto"
	settingMocks "frontdesk/internal/domains/setting/mocks"
	"frontdesk/internal/domains/setting/service"
	cacheMocks "frontdesk/shared/cache/mocks"
)

var stored = model.Settings{
	ID:      model.PrimaryID,
	Name:    "Hotel Ayodhya Palace",
	TaxRate: 12,
	RoomTypeRates: map[string]model.RoomTypeRate{
		"DELUXE ROOM": {Single: 3500, Double: 4000},
	},
}

func TestSettingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settingMocks.NewMockSettings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		want      model.Settings
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "setting:get:primary", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*model.Settings)) = stored

						return nil
					})
			},
			want: stored,
		},
		{
			name: "cache miss reads the store and caches",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
				mockRepo.EXPECT().Get(gomock.Any(), model.PrimaryID).Return(stored, nil)
				mockCache.EXPECT().Save(gomock.Any(), "setting:get:primary", stored, 60).Return(nil)
			},
			want: stored,
		},
		{
			name: "missing settings fall back to an empty record",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
				mockRepo.EXPECT().Get(gomock.Any(), model.PrimaryID).Return(model.Settings{}, nil)
			},
			want: model.Settings{ID: model.PrimaryID},
		},
		{
			name: "store error",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
				mockRepo.EXPECT().Get(gomock.Any(), model.PrimaryID).Return(model.Settings{}, errors.New("disk I/O error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.Get(context.Background())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settingMocks.NewMockSettings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	req := dto.UpdateSettingsRequest{
		Name:    "Hotel Ayodhya Palace",
		TaxRate: 18,
		RoomTypeRates: map[string]dto.RoomTypeRate{
			"DELUXE ROOM": {Single: 3500, Double: 4000},
		},
		Agents: []dto.AgentConfig{{Name: "MakeMyTrip", Commission: 15}},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "stores and invalidates the cache",
			setupMock: func() {
				mockRepo.EXPECT().
					Put(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, settings model.Settings) error {
						assert.Equal(t, model.PrimaryID, settings.ID)
						assert.Equal(t, 18.0, settings.TaxRate)
						assert.Equal(t, 4000.0, settings.Tariff("DELUXE ROOM", true))
						assert.Equal(t, "MakeMyTrip", settings.Agents[0].Name)

						return nil
					})
				mockCache.EXPECT().Delete(gomock.Any(), "setting:get:primary").Return(nil)
			},
		},
		{
			name: "store error",
			setupMock: func() {
				mockRepo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Update(context.Background(), req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestSettingService_EnsureDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settingMocks.NewMockSettings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	t.Run("existing settings are kept", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), model.PrimaryID).Return(stored, nil)

		created, err := svc.EnsureDefaults(context.Background(), model.Settings{Name: "Defaults"})
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("defaults are stored when empty", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), model.PrimaryID).Return(model.Settings{}, nil)
		mockRepo.EXPECT().Put(gomock.Any(), model.Settings{ID: model.PrimaryID, Name: "Defaults"}).Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

		created, err := svc.EnsureDefaults(context.Background(), model.Settings{Name: "Defaults"})
		assert.NoError(t, err)
		assert.True(t, created)
	})
}
