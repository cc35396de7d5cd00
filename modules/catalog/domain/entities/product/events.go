package product

type CreatedEvent struct {
	Result Product
}

type UpdatedEvent struct {
	Result Product
}

type DeletedEvent struct {
	Result Product
}
