package service

import (
	"context"

	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/ws"
	"go-wholesale-console/pkg/validator"

	"github.com/rs/zerolog"
)

// StoreAPI is the part of the external API the store screens use.
type StoreAPI interface {
	ListStores(ctx context.Context, token string) ([]model.Store, error)
	CreateStore(ctx context.Context, token string, req model.CreateStoreRequest) (*model.Store, error)
	UpdateStore(ctx context.Context, token string, store model.Store) (*model.Store, error)
}

// EventPublisher pushes live events to open consoles.
type EventPublisher interface {
	Publish(eventType, actor string, payload any)
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, string, any) {}

// StoreRow is a listing row; Toggling marks a row whose status change is still outstanding.
type StoreRow struct {
	model.Store
	Toggling bool `json:"toggling"`
}

// StoreListing is a filtered store table.
type StoreListing struct {
	Stores []StoreRow `json:"stores"`
	Total  int        `json:"total"`
	Shown  int        `json:"shown"`
}

type StoreService interface {
	ListStores(ctx context.Context, sess *Session, q StoreQuery) (*StoreListing, error)
	CreateStore(ctx context.Context, sess *Session, req *model.CreateStoreRequest) (*model.Store, error)
	UpdateStore(ctx context.Context, sess *Session, id string, req *model.UpdateStoreRequest) (*model.Store, error)
	ToggleStatus(ctx context.Context, sess *Session, id string, snapshot model.Store) (*model.Store, error)
}

type storeService struct {
	api      StoreAPI
	events   EventPublisher
	inFlight *InFlight
	logger   zerolog.Logger
}

func NewStoreService(api StoreAPI, events EventPublisher, logger zerolog.Logger) StoreService {
	if events == nil {
		events = noopPublisher{}
	}
	return &storeService{
		api:      api,
		events:   events,
		inFlight: NewInFlight(),
		logger:   logger.With().Str("component", "store_service").Logger(),
	}
}

func (s *storeService) ListStores(ctx context.Context, sess *Session, q StoreQuery) (*StoreListing, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	stores, err := s.api.ListStores(ctx, sess.UpstreamToken)
	if err != nil {
		return nil, err
	}

	filtered := FilterStores(stores, q)
	busy := s.inFlight.BusySet()
	rows := make([]StoreRow, len(filtered))
	for i, st := range filtered {
		rows[i] = StoreRow{Store: st, Toggling: busy[st.ID]}
	}
	return &StoreListing{Stores: rows, Total: len(stores), Shown: len(rows)}, nil
}

func (s *storeService) CreateStore(ctx context.Context, sess *Session, req *model.CreateStoreRequest) (*model.Store, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	// 1. Validate before anything leaves the console
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	// 2. Create upstream
	store, err := s.api.CreateStore(ctx, sess.UpstreamToken, *req)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("store_id", store.ID).Str("actor", sess.Actor()).Msg("store created")
	s.events.Publish(ws.EventStoreCreated, sess.Actor(), store)
	return store, nil
}

func (s *storeService) UpdateStore(ctx context.Context, sess *Session, id string, req *model.UpdateStoreRequest) (*model.Store, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	store, err := s.api.UpdateStore(ctx, sess.UpstreamToken, model.Store{
		ID:       id,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ws.EventStoreUpdated, sess.Actor(), store)
	return store, nil
}

// ToggleStatus sends snapshot back with IsActive inverted. snapshot must pass the same
// checks as the edit form. Only one toggle per store id may be outstanding; a second one
// fails with ErrToggleInFlight until the first resolves.
func (s *storeService) ToggleStatus(ctx context.Context, sess *Session, id string, snapshot model.Store) (*model.Store, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if snapshot.ID == "" {
		snapshot.ID = id
	}
	if snapshot.ID != id {
		return nil, ErrSnapshotMismatch
	}
	// The update replaces the whole store, so the snapshot must be a complete one
	snap := snapshot.UpdateRequest()
	if err := validator.Validate(&snap); err != nil {
		return nil, err
	}

	if !s.inFlight.Begin(id) {
		return nil, ErrToggleInFlight
	}
	defer s.inFlight.Done(id)

	update := snapshot
	update.IsActive = !snapshot.IsActive

	store, err := s.api.UpdateStore(ctx, sess.UpstreamToken, update)
	if err != nil {
		s.logger.Warn().Err(err).Str("store_id", id).Msg("status toggle failed")
		return nil, err
	}

	s.logger.Info().
		Str("store_id", id).
		Bool("is_active", store.IsActive).
		Str("actor", sess.Actor()).
		Msg("store status changed")
	s.events.Publish(ws.EventStoreStatusChanged, sess.Actor(), store)
	return store, nil
}
