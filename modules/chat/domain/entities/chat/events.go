package chat

type ThreadCreatedEvent struct {
	Result Thread
}

type MessageCreatedEvent struct {
	Thread Thread
	Result Message
}

type ThreadMissedEvent struct {
	Result Thread
}
