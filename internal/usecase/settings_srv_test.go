package usecase_test

import (
	"context"
	"testing"

	"riget-zoo/internal/data/entity"
	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr(v float64) *float64 { return &v }

func TestPricingConfigDefaults(t *testing.T) {
	service := usecase.NewSettingsService(newFakeSettingStore(), zap.NewNop())

	cfg, err := service.PricingConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultTicketPrice, cfg.TicketPrice)
	assert.Equal(t, entity.DefaultHotelSingle, cfg.HotelSingle)
	assert.Equal(t, entity.DefaultHotelDouble, cfg.HotelDouble)
	assert.Equal(t, entity.DefaultHotelSuite, cfg.HotelSuite)
	assert.Equal(t, entity.DefaultLoyalty6mPct, cfg.Loyalty6mPct)
	assert.Equal(t, entity.DefaultLoyalty12mPct, cfg.Loyalty12mPct)
	assert.Equal(t, entity.DefaultLoyalty24mPct, cfg.Loyalty24mPct)
	assert.Equal(t, entity.DefaultLoyalty12mPerk, cfg.Loyalty12mPerk)
	assert.Equal(t, entity.DefaultLoyalty24mPerk, cfg.Loyalty24mPerk)
}

func TestPricingConfigReadsStoredValues(t *testing.T) {
	store := newFakeSettingStore()
	store.values[entity.SettingTicketPrice] = "12.5"
	store.values[entity.SettingHotelSuite] = "200"

	service := usecase.NewSettingsService(store, zap.NewNop())

	cfg, err := service.PricingConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.5, cfg.TicketPrice)
	assert.Equal(t, 200.0, cfg.HotelSuite)
	assert.Equal(t, entity.DefaultHotelSingle, cfg.HotelSingle)
}

func TestPricingConfigNonNumericFallsBackToDefault(t *testing.T) {
	store := newFakeSettingStore()
	store.values[entity.SettingTicketPrice] = "not-a-number"

	service := usecase.NewSettingsService(store, zap.NewNop())

	cfg, err := service.PricingConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTicketPrice, cfg.TicketPrice)
}

func TestUpdateSettingsSavesProvidedFields(t *testing.T) {
	store := newFakeSettingStore()
	service := usecase.NewSettingsService(store, zap.NewNop())

	perk := "Free guided tour"
	err := service.UpdateSettings(context.Background(), &request.UpdateSettingsRequest{
		TicketPrice:    ptr(15),
		Loyalty6mPct:   ptr(12.5),
		Loyalty12mPerk: &perk,
	})

	require.NoError(t, err)
	assert.Equal(t, "15", store.saved[entity.SettingTicketPrice])
	assert.Equal(t, "12.5", store.saved[entity.SettingLoyalty6mPct])
	assert.Equal(t, "Free guided tour", store.saved[entity.SettingLoyalty12mPerk])

	// Untouched keys stay unsaved.
	_, touched := store.saved[entity.SettingHotelSingle]
	assert.False(t, touched)
}

func TestUpdateSettingsRejectsWholeSubmission(t *testing.T) {
	store := newFakeSettingStore()
	service := usecase.NewSettingsService(store, zap.NewNop())

	err := service.UpdateSettings(context.Background(), &request.UpdateSettingsRequest{
		TicketPrice:   ptr(15),
		HotelSingle:   ptr(-1),
		Loyalty6mPct:  ptr(120),
		Loyalty12mPct: ptr(5),
	})

	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Rules, 2)

	// All-or-nothing: the valid fields must not have been written either.
	assert.Empty(t, store.saved)
}
