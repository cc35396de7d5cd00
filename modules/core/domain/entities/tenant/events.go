package tenant

type CreatedEvent struct {
	Result Tenant
}

type UpdatedEvent struct {
	Result Tenant
}

type BlockedEvent struct {
	Result Tenant
}

type PlanChangedEvent struct {
	Previous Plan
	Result   Tenant
}
