package repository

import (
	"riget-zoo/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Setting   SettingRepository
	Booking   BookingRepository
	Contact   ContactRepository
	Education EducationRepository
	Report    ReportRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Setting:   NewSettingRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Contact:   NewContactRepository(db, log),
		Education: NewEducationRepository(db, log),
		Report:    NewReportRepository(db, log),
	}
}
