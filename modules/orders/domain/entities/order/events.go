package order

type CreatedEvent struct {
	Result Order
}

type StatusChangedEvent struct {
	Previous Status
	Result   Order
}
