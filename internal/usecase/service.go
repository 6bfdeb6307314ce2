package usecase

import (
	"riget-zoo/internal/data/repository"
	"riget-zoo/pkg/database"
	"riget-zoo/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Settings  SettingsService
	Booking   BookingService
	Contact   ContactService
	Education EducationService
	Report    ReportService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	settings := NewSettingsService(repo.Setting, log)

	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Settings:  settings,
		Booking:   NewBookingService(db, repo, settings, log),
		Contact:   NewContactService(repo.Contact, log),
		Education: NewEducationService(repo.Education, log),
		Report:    NewReportService(repo, log),
	}
}
