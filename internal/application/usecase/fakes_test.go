package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
)

// In-memory repositories. They hand out copies so a mutation in the use case
// only lands in the store through an explicit Update call.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.User{}
	for _, u := range r.users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type memCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanyRepo) GetByCreatedBy(_ context.Context, userID string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *entity.Company
	for _, c := range r.companies {
		if c.CreatedBy != userID {
			continue
		}
		if found == nil || c.CreatedAt.Before(found.CreatedAt) {
			found = c
		}
	}
	if found == nil {
		return nil, nil
	}
	cp := *found
	return &cp, nil
}

func (r *memCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) ListPending(_ context.Context) ([]*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Company{}
	for _, c := range r.companies {
		if !c.Approved {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCompanyRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.companies, id)
	return nil
}

type memRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.FreightRequest
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: map[string]*entity.FreightRequest{}}
}

func (r *memRequestRepo) Create(_ context.Context, req *entity.FreightRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *memRequestRepo) GetByID(_ context.Context, id string) (*entity.FreightRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *memRequestRepo) Update(_ context.Context, req *entity.FreightRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *memRequestRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.requests, id)
	return nil
}

func (r *memRequestRepo) ListActive(_ context.Context) ([]*entity.FreightRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.FreightRequest{}
	for _, req := range r.requests {
		if req.Status == entity.StatusActive {
			cp := *req
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRequestRepo) ListByUser(_ context.Context, userID string) ([]*entity.FreightRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.FreightRequest{}
	for _, req := range r.requests {
		if req.UserID == userID {
			cp := *req
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRequestRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

// memTxRunner runs the function against the same in-memory stores. The fakes
// are not transactional; tests only rely on the visible end state.
type memTxRunner struct {
	companies *memCompanyRepo
	users     *memUserRepo
}

func (t *memTxRunner) Run(ctx context.Context, fn func(repository.CompanyRepository, repository.UserRepository) error) error {
	return fn(t.companies, t.users)
}
