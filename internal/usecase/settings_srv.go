package usecase

import (
	"context"
	"fmt"
	"strconv"

	"riget-zoo/internal/data/entity"
	"riget-zoo/internal/data/repository"
	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/dto/response"

	"go.uber.org/zap"
)

type SettingsService interface {
	// PricingConfig loads a typed snapshot of all pricing and loyalty
	// settings with their documented defaults.
	PricingConfig(ctx context.Context) (*PricingConfig, error)
	GetSettings(ctx context.Context) (*response.SettingsResponse, error)
	// UpdateSettings validates the whole submission and saves nothing when
	// any field is out of range.
	UpdateSettings(ctx context.Context, req *request.UpdateSettingsRequest) error
}

type settingsService struct {
	repo repository.SettingRepository
	log  *zap.Logger
}

func NewSettingsService(repo repository.SettingRepository, log *zap.Logger) SettingsService {
	return &settingsService{
		repo: repo,
		log:  log.With(zap.String("service", "settings")),
	}
}

func (s *settingsService) PricingConfig(ctx context.Context) (*PricingConfig, error) {
	cfg := &PricingConfig{}

	var err error
	if cfg.TicketPrice, err = s.getFloat(ctx, entity.SettingTicketPrice, entity.DefaultTicketPrice); err != nil {
		return nil, err
	}
	if cfg.HotelSingle, err = s.getFloat(ctx, entity.SettingHotelSingle, entity.DefaultHotelSingle); err != nil {
		return nil, err
	}
	if cfg.HotelDouble, err = s.getFloat(ctx, entity.SettingHotelDouble, entity.DefaultHotelDouble); err != nil {
		return nil, err
	}
	if cfg.HotelSuite, err = s.getFloat(ctx, entity.SettingHotelSuite, entity.DefaultHotelSuite); err != nil {
		return nil, err
	}
	if cfg.Loyalty6mPct, err = s.getFloat(ctx, entity.SettingLoyalty6mPct, entity.DefaultLoyalty6mPct); err != nil {
		return nil, err
	}
	if cfg.Loyalty12mPct, err = s.getFloat(ctx, entity.SettingLoyalty12mPct, entity.DefaultLoyalty12mPct); err != nil {
		return nil, err
	}
	if cfg.Loyalty24mPct, err = s.getFloat(ctx, entity.SettingLoyalty24mPct, entity.DefaultLoyalty24mPct); err != nil {
		return nil, err
	}
	if cfg.Loyalty12mPerk, err = s.repo.Get(ctx, entity.SettingLoyalty12mPerk, entity.DefaultLoyalty12mPerk); err != nil {
		return nil, err
	}
	if cfg.Loyalty24mPerk, err = s.repo.Get(ctx, entity.SettingLoyalty24mPerk, entity.DefaultLoyalty24mPerk); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (s *settingsService) GetSettings(ctx context.Context) (*response.SettingsResponse, error) {
	cfg, err := s.PricingConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return &response.SettingsResponse{
		TicketPrice:    cfg.TicketPrice,
		HotelSingle:    cfg.HotelSingle,
		HotelDouble:    cfg.HotelDouble,
		HotelSuite:     cfg.HotelSuite,
		Loyalty6mPct:   cfg.Loyalty6mPct,
		Loyalty12mPct:  cfg.Loyalty12mPct,
		Loyalty24mPct:  cfg.Loyalty24mPct,
		Loyalty12mPerk: cfg.Loyalty12mPerk,
		Loyalty24mPerk: cfg.Loyalty24mPerk,
	}, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req *request.UpdateSettingsRequest) error {
	var rules []string

	checkPrice := func(name string, v *float64) {
		if v != nil && *v < 0 {
			rules = append(rules, name+" must be 0 or more")
		}
	}
	checkPct := func(name string, v *float64) {
		if v != nil && (*v < 0 || *v > 100) {
			rules = append(rules, name+" must be between 0 and 100")
		}
	}

	checkPrice("Ticket price", req.TicketPrice)
	checkPrice("Hotel single price", req.HotelSingle)
	checkPrice("Hotel double price", req.HotelDouble)
	checkPrice("Hotel suite price", req.HotelSuite)
	checkPct("6-month discount", req.Loyalty6mPct)
	checkPct("12-month discount", req.Loyalty12mPct)
	checkPct("24-month discount", req.Loyalty24mPct)

	if len(rules) > 0 {
		s.log.Warn("Settings update rejected", zap.Strings("rules", rules))
		return &ValidationError{Rules: rules}
	}

	// All fields validated above; nothing is written unless the whole
	// submission is acceptable.
	sets := []struct {
		key   string
		value *string
	}{
		{entity.SettingTicketPrice, floatStr(req.TicketPrice)},
		{entity.SettingHotelSingle, floatStr(req.HotelSingle)},
		{entity.SettingHotelDouble, floatStr(req.HotelDouble)},
		{entity.SettingHotelSuite, floatStr(req.HotelSuite)},
		{entity.SettingLoyalty6mPct, floatStr(req.Loyalty6mPct)},
		{entity.SettingLoyalty12mPct, floatStr(req.Loyalty12mPct)},
		{entity.SettingLoyalty24mPct, floatStr(req.Loyalty24mPct)},
		{entity.SettingLoyalty12mPerk, req.Loyalty12mPerk},
		{entity.SettingLoyalty24mPerk, req.Loyalty24mPerk},
	}

	for _, set := range sets {
		if set.value == nil {
			continue
		}
		if err := s.repo.Set(ctx, set.key, *set.value); err != nil {
			return fmt.Errorf("save setting %s: %w", set.key, err)
		}
	}

	s.log.Info("Settings saved")
	return nil
}

func (s *settingsService) getFloat(ctx context.Context, key string, def float64) (float64, error) {
	raw, err := s.repo.Get(ctx, key, "")
	if err != nil {
		return 0, fmt.Errorf("load setting %s: %w", key, err)
	}
	if raw == "" {
		return def, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.log.Warn("Setting is not numeric, using default",
			zap.String("key", key),
			zap.String("value", raw),
		)
		return def, nil
	}

	return value, nil
}

func floatStr(v *float64) *string {
	if v == nil {
		return nil
	}
	formatted := strconv.FormatFloat(*v, 'f', -1, 64)
	return &formatted
}
