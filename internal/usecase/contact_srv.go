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

type ContactService interface {
	// Submit validates and stores a contact message. identity is nil for
	// guests; authenticated callers have name and email taken from the
	// session.
	Submit(ctx context.Context, identity *entity.Identity, req *request.ContactRequest) (*response.ContactResponse, error)
	List(ctx context.Context) ([]*response.ContactResponse, error)
}

type contactService struct {
	repo repository.ContactRepository
	log  *zap.Logger
}

func NewContactService(repo repository.ContactRepository, log *zap.Logger) ContactService {
	return &contactService{
		repo: repo,
		log:  log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) Submit(ctx context.Context, identity *entity.Identity, req *request.ContactRequest) (*response.ContactResponse, error) {
	name := req.Name
	email := req.Email
	if identity != nil {
		name = identity.FullName()
		email = identity.Email
	}

	var rules []string
	if name == "" {
		rules = append(rules, "Name required")
	}
	if !utils.IsValidEmail(email) {
		rules = append(rules, "Valid email required")
	}
	if req.Subject == "" {
		rules = append(rules, "Subject required")
	}
	if req.Message == "" {
		rules = append(rules, "Message required")
	}
	if len(req.Subject) > 255 {
		rules = append(rules, "Subject is too long")
	}
	if len(req.Message) > 2000 {
		rules = append(rules, "Message is too long")
	}
	if req.Phone != "" {
		rules = append(rules, "Bot detection triggered")
	}

	if len(rules) > 0 {
		return nil, &ValidationError{Rules: rules}
	}

	contact := &entity.Contact{
		Name:      name,
		Email:     email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	// No outbound mail; the received message is recorded in the log instead.
	s.log.Info("Contact form received",
		zap.Int64("contact_id", contact.ID),
		zap.String("email", contact.Email),
		zap.String("subject", contact.Subject),
	)

	return response.ContactToResponse(contact), nil
}

func (s *contactService) List(ctx context.Context) ([]*response.ContactResponse, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return response.ContactsToResponse(contacts), nil
}
