package dtos

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/core/domain/entities/tenant"
)

var Validate = validator.New()

type CreateTenantRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Subdomain    string `json:"subdomain" validate:"omitempty,hostname_rfc1123,max=63"`
	CustomDomain string `json:"customDomain" validate:"omitempty,fqdn,max=255"`
	Plan         string `json:"plan" validate:"omitempty,oneof=free basic pro"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone" validate:"max=32"`
}

type SetPlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=free basic pro"`
}

type ExtendTrialRequest struct {
	Until time.Time `json:"until" validate:"required"`
}

type TenantResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Subdomain    string     `json:"subdomain,omitempty"`
	CustomDomain string     `json:"customDomain,omitempty"`
	Plan         string     `json:"plan"`
	TrialEndsAt  *time.Time `json:"trialEndsAt,omitempty"`
	Blocked      bool       `json:"blocked"`
	ContactEmail string     `json:"contactEmail,omitempty"`
	ContactPhone string     `json:"contactPhone,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func NewTenantResponse(t *tenant.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:           t.ID(),
		Name:         t.Name(),
		Subdomain:    t.Subdomain(),
		CustomDomain: t.CustomDomain(),
		Plan:         string(t.Plan()),
		TrialEndsAt:  t.TrialEndsAt(),
		Blocked:      t.Blocked(),
		ContactEmail: t.ContactEmail(),
		ContactPhone: t.ContactPhone(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func NewTenantListResponse(tenants []*tenant.Tenant) []*TenantResponse {
	out := make([]*TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, NewTenantResponse(t))
	}
	return out
}
