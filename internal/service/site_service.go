package service

import (
	"context"

	"go-wholesale-console/internal/model"
	"go-wholesale-console/pkg/validator"

	"github.com/rs/zerolog"
)

// ContactAPI receives messages from the public contact form.
type ContactAPI interface {
	SubmitContact(ctx context.Context, msg model.ContactMessage) error
}

// SiteService backs the public marketing pages.
type SiteService interface {
	Categories() []model.Category
	About() model.About
	SubmitContact(ctx context.Context, msg *model.ContactMessage) error
}

type siteService struct {
	api    ContactAPI
	logger zerolog.Logger
}

func NewSiteService(api ContactAPI, logger zerolog.Logger) SiteService {
	return &siteService{api: api, logger: logger.With().Str("component", "site_service").Logger()}
}

func (s *siteService) Categories() []model.Category {
	return append([]model.Category(nil), model.DefaultCategories...)
}

func (s *siteService) About() model.About {
	about := model.DefaultAbout
	about.Highlights = append([]string(nil), about.Highlights...)
	return about
}

func (s *siteService) SubmitContact(ctx context.Context, msg *model.ContactMessage) error {
	if err := validator.Validate(msg); err != nil {
		return err
	}
	if err := s.api.SubmitContact(ctx, *msg); err != nil {
		return err
	}
	s.logger.Info().Str("email", msg.Email).Msg("contact message forwarded")
	return nil
}
