package service

import (
	"context"
	"sync"

	"go-wholesale-console/internal/model"
)

// fakeAPI records every call and lets a test hold UpdateStore open.
type fakeAPI struct {
	mu sync.Mutex

	stores []model.Store
	users  []model.User
	err    error

	updateCalls   []model.Store
	createCalls   []model.CreateStoreRequest
	registerCalls []model.RegisterUserPayload
	contactCalls  []model.ContactMessage
	tokens        []string

	updateStarted chan struct{}
	updateRelease chan struct{}
}

func (f *fakeAPI) record(token string) {
	f.tokens = append(f.tokens, token)
}

func (f *fakeAPI) ListStores(_ context.Context, token string) ([]model.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(token)
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Store(nil), f.stores...), nil
}

func (f *fakeAPI) CreateStore(_ context.Context, token string, req model.CreateStoreRequest) (*model.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(token)
	f.createCalls = append(f.createCalls, req)
	if f.err != nil {
		return nil, f.err
	}
	return &model.Store{ID: "new-store", Name: req.Name, Address: req.Address, Phone: req.Phone, Email: req.Email, IsActive: true}, nil
}

func (f *fakeAPI) UpdateStore(_ context.Context, token string, store model.Store) (*model.Store, error) {
	f.mu.Lock()
	f.record(token)
	f.updateCalls = append(f.updateCalls, store)
	started, release, err := f.updateStarted, f.updateRelease, f.err
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return nil, err
	}
	out := store
	return &out, nil
}

func (f *fakeAPI) ListUsers(_ context.Context, token string) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(token)
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.User(nil), f.users...), nil
}

func (f *fakeAPI) RegisterUser(_ context.Context, token string, req model.RegisterUserPayload) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(token)
	f.registerCalls = append(f.registerCalls, req)
	if f.err != nil {
		return nil, f.err
	}
	return &model.User{ID: "new-user", Name: req.Name, Email: req.Email, Phone: req.Phone, Role: req.Role, StoreID: req.StoreID}, nil
}

func (f *fakeAPI) SubmitContact(_ context.Context, msg model.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contactCalls = append(f.contactCalls, msg)
	return f.err
}

func (f *fakeAPI) Login(_ context.Context, req model.LoginRequest) (*model.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &model.LoginResult{Token: "upstream-" + req.Email, User: model.Identity{Name: "Test User", Email: req.Email, Role: "admin"}}, nil
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tokens) + len(f.contactCalls)
}

type publishedEvent struct {
	eventType string
	actor     string
	payload   any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(eventType, actor string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{eventType, actor, payload})
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.eventType
	}
	return out
}

func adminSession() *Session {
	return &Session{
		Identity:      &model.Identity{Name: "Admin", Email: "admin@wholesale.test", Role: model.RoleAdmin},
		UpstreamToken: "up-token",
		Language:      "en",
		Theme:         model.ThemeLight,
	}
}
