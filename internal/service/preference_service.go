package service

import (
	"context"
	"errors"

	"go-wholesale-console/internal/i18n"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/repository"

	"github.com/rs/zerolog"
)

// PreferenceInput is what the shell sends when the user changes language or theme.
// Empty fields keep the current value.
type PreferenceInput struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// PreferenceHints are the request-side signals for presentation, strongest first.
type PreferenceHints struct {
	CookieLanguage string
	CookieTheme    string
	AcceptLanguage string
}

type PreferenceService interface {
	// Resolve picks language and theme: cookie, then stored preference, then
	// Accept-Language, then defaults. It reads the store, so it runs at sign-in only.
	Resolve(ctx context.Context, identity *model.Identity, hints PreferenceHints) (string, model.Theme)
	// Save applies input on top of the session's current presentation and persists it for
	// signed-in users.
	Save(ctx context.Context, sess *Session, in PreferenceInput) (string, model.Theme, error)
	// Load returns the stored preference of email, if any.
	Load(ctx context.Context, email string) (*model.Preference, error)
}

type preferenceService struct {
	repo   repository.PreferenceRepository
	logger zerolog.Logger
}

func NewPreferenceService(repo repository.PreferenceRepository, logger zerolog.Logger) PreferenceService {
	return &preferenceService{
		repo:   repo,
		logger: logger.With().Str("component", "preference_service").Logger(),
	}
}

func (s *preferenceService) Resolve(ctx context.Context, identity *model.Identity, hints PreferenceHints) (string, model.Theme) {
	var stored *model.Preference
	if identity != nil {
		if _, langOK := i18n.Normalize(hints.CookieLanguage); !langOK {
			stored, _ = s.Load(ctx, identity.Email)
		} else if _, themeOK := model.ParseTheme(hints.CookieTheme); !themeOK {
			stored, _ = s.Load(ctx, identity.Email)
		}
	}
	return resolvePresentation(hints, stored)
}

// ResolvePresentation picks language and theme from the request alone: cookie, then
// Accept-Language, then defaults. Stored preferences reach the request through the
// cookies written at sign-in and on every change.
func ResolvePresentation(hints PreferenceHints) (string, model.Theme) {
	return resolvePresentation(hints, nil)
}

func resolvePresentation(hints PreferenceHints, stored *model.Preference) (string, model.Theme) {
	lang, langOK := i18n.Normalize(hints.CookieLanguage)
	theme, themeOK := model.ParseTheme(hints.CookieTheme)

	if stored != nil {
		if !langOK {
			lang, langOK = i18n.Normalize(stored.Language)
		}
		if !themeOK {
			theme, themeOK = model.ParseTheme(string(stored.Theme))
		}
	}

	if !langOK {
		if hints.AcceptLanguage != "" {
			lang = i18n.MatchLanguage(hints.AcceptLanguage)
		} else {
			lang = i18n.DefaultLanguage
		}
	}
	if !themeOK {
		theme = model.DefaultTheme
	}
	return lang, theme
}

func (s *preferenceService) Save(ctx context.Context, sess *Session, in PreferenceInput) (string, model.Theme, error) {
	lang, theme := sess.Language, sess.Theme
	if in.Language != "" {
		l, ok := i18n.Normalize(in.Language)
		if !ok {
			return "", "", ErrInvalidPreference
		}
		lang = l
	}
	if in.Theme != "" {
		t, ok := model.ParseTheme(in.Theme)
		if !ok {
			return "", "", ErrInvalidPreference
		}
		theme = t
	}
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	if theme == "" {
		theme = model.DefaultTheme
	}

	if sess.Authenticated() {
		pref := &model.Preference{Email: sess.Identity.Email, Language: lang, Theme: theme}
		pref.UpdatedBy = sess.Identity.Email
		if err := s.repo.Upsert(ctx, pref); err != nil {
			s.logger.Error().Err(err).Str("email", sess.Identity.Email).Msg("save preference")
			return "", "", err
		}
	}
	return lang, theme, nil
}

func (s *preferenceService) Load(ctx context.Context, email string) (*model.Preference, error) {
	pref, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferenceNotFound) {
			s.logger.Warn().Err(err).Str("email", email).Msg("load preference")
		}
		return nil, err
	}
	return pref, nil
}
