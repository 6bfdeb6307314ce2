package repository

import (
	"context"
	"fmt"

	"riget-zoo/internal/data/entity"
	"riget-zoo/pkg/database"

	"go.uber.org/zap"
)

type EducationRepository interface {
	Create(ctx context.Context, request *entity.EducationRequest) error
	List(ctx context.Context) ([]*entity.EducationRequest, error)
}

type educationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEducationRepository(db database.PgxIface, log *zap.Logger) EducationRepository {
	return &educationRepository{
		db:  db,
		log: log.With(zap.String("repository", "education")),
	}
}

func (r *educationRepository) Create(ctx context.Context, request *entity.EducationRequest) error {
	query := `
		INSERT INTO education_requests (school, contact, email, phone, tour_date, group_size,
			age_range, mobility, allergies, behaviour, length, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		request.School,
		request.Contact,
		request.Email,
		request.Phone,
		request.TourDate,
		request.GroupSize,
		request.AgeRange,
		request.Mobility,
		request.Allergies,
		request.Behaviour,
		request.Length,
		request.Notes,
		request.Status,
		request.CreatedAt,
	).Scan(&request.ID)

	if err != nil {
		r.log.Error("Failed to create education request",
			zap.Error(err),
			zap.String("school", request.School),
		)
		return fmt.Errorf("create education request: %w", err)
	}

	return nil
}

func (r *educationRepository) List(ctx context.Context) ([]*entity.EducationRequest, error) {
	query := `
		SELECT id, school, contact, email, phone, tour_date, group_size,
			age_range, mobility, allergies, behaviour, length, notes, status, created_at
		FROM education_requests
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list education requests", zap.Error(err))
		return nil, fmt.Errorf("list education requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.EducationRequest
	for rows.Next() {
		var request entity.EducationRequest
		err := rows.Scan(
			&request.ID,
			&request.School,
			&request.Contact,
			&request.Email,
			&request.Phone,
			&request.TourDate,
			&request.GroupSize,
			&request.AgeRange,
			&request.Mobility,
			&request.Allergies,
			&request.Behaviour,
			&request.Length,
			&request.Notes,
			&request.Status,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan education request row: %w", err)
		}
		requests = append(requests, &request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate education request rows: %w", err)
	}

	return requests, nil
}
