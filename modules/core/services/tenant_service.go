package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/core/domain/entities/tenant"
	"github.com/storo-shop/backend/pkg/eventbus"
	"github.com/storo-shop/backend/pkg/serrors"
)

var ErrInvalidPlan = serrors.NewError("TENANT_INVALID_PLAN", "unknown billing plan", "")

// TenantService fronts the tenant directory. Resolution middleware calls the
// lookup methods; the superadmin surface calls the mutations.
type TenantService struct {
	repo      tenant.Repository
	publisher eventbus.EventBus
}

func NewTenantService(repo tenant.Repository, publisher eventbus.EventBus) *TenantService {
	return &TenantService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TenantService) GetByCustomDomain(ctx context.Context, domain string) (*tenant.Tenant, error) {
	return s.repo.GetByCustomDomain(ctx, domain)
}

func (s *TenantService) GetBySubdomain(ctx context.Context, label string) (*tenant.Tenant, error) {
	return s.repo.GetBySubdomain(ctx, label)
}

func (s *TenantService) List(ctx context.Context) ([]*tenant.Tenant, error) {
	return s.repo.List(ctx)
}

func (s *TenantService) Create(ctx context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&tenant.CreatedEvent{Result: *created})
	return created, nil
}

func (s *TenantService) SetPlan(ctx context.Context, id uuid.UUID, plan tenant.Plan) (*tenant.Tenant, error) {
	if !plan.Valid() {
		return nil, ErrInvalidPlan.WithDetails(string(plan))
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := t.Plan()
	t.SetPlan(plan)
	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&tenant.PlanChangedEvent{Previous: previous, Result: *updated})
	return updated, nil
}

func (s *TenantService) ExtendTrial(ctx context.Context, id uuid.UUID, until time.Time) (*tenant.Tenant, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.SetTrialEndsAt(&until)
	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&tenant.UpdatedEvent{Result: *updated})
	return updated, nil
}

func (s *TenantService) Block(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	return s.setBlocked(ctx, id, true)
}

func (s *TenantService) Unblock(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	return s.setBlocked(ctx, id, false)
}

func (s *TenantService) setBlocked(ctx context.Context, id uuid.UUID, blocked bool) (*tenant.Tenant, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blocked {
		t.Block()
	} else {
		t.Unblock()
	}
	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	if blocked {
		s.publisher.Publish(&tenant.BlockedEvent{Result: *updated})
	} else {
		s.publisher.Publish(&tenant.UpdatedEvent{Result: *updated})
	}
	return updated, nil
}
