package usecase

import (
	"context"
	"fmt"
	"time"

	"riget-zoo/internal/data/entity"
	"riget-zoo/internal/data/repository"
	"riget-zoo/internal/dto/request"
	"riget-zoo/internal/dto/response"
	"riget-zoo/pkg/utils"

	"go.uber.org/zap"
)

type EducationService interface {
	Submit(ctx context.Context, req *request.EducationTourRequest) (*response.EducationRequestResponse, error)
	List(ctx context.Context) ([]*response.EducationRequestResponse, error)
}

type educationService struct {
	repo repository.EducationRepository
	log  *zap.Logger
}

func NewEducationService(repo repository.EducationRepository, log *zap.Logger) EducationService {
	return &educationService{
		repo: repo,
		log:  log.With(zap.String("service", "education")),
	}
}

func (s *educationService) Submit(ctx context.Context, req *request.EducationTourRequest) (*response.EducationRequestResponse, error) {
	var rules []string
	if req.School == "" {
		rules = append(rules, "School name required")
	}
	if req.Contact == "" {
		rules = append(rules, "Contact name required")
	}
	if !utils.IsValidEmail(req.Email) {
		rules = append(rules, "Valid email required")
	}
	if req.GroupSize < 1 {
		rules = append(rules, "Group size must be at least 1")
	}

	tourDate, ok := utils.ParseDate(req.Date)
	if !ok {
		rules = append(rules, "Tour date must be a valid YYYY-MM-DD date")
	}

	if len(rules) > 0 {
		return nil, &ValidationError{Rules: rules}
	}

	length := req.Length
	if length == "" {
		length = "standard"
	}

	educationRequest := &entity.EducationRequest{
		School:    req.School,
		Contact:   req.Contact,
		Email:     req.Email,
		Phone:     req.Phone,
		TourDate:  tourDate,
		GroupSize: req.GroupSize,
		AgeRange:  req.AgeRange,
		Mobility:  flagOrNo(req.Mobility),
		Allergies: flagOrNo(req.Allergies),
		Behaviour: flagOrNo(req.Behaviour),
		Length:    length,
		Notes:     req.Notes,
		Status:    entity.EducationRequestStatusNew,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, educationRequest); err != nil {
		return nil, fmt.Errorf("store education request: %w", err)
	}

	s.log.Info("Education tour request received",
		zap.Int64("request_id", educationRequest.ID),
		zap.String("school", educationRequest.School),
		zap.Int("group_size", educationRequest.GroupSize),
	)

	return response.EducationRequestToResponse(educationRequest), nil
}

func (s *educationService) List(ctx context.Context) ([]*response.EducationRequestResponse, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list education requests: %w", err)
	}
	return response.EducationRequestsToResponse(requests), nil
}

func flagOrNo(v string) string {
	if v == "" {
		return "no"
	}
	return v
}
