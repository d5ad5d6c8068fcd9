package events

import "github.com/ghuser/biblioteca/pkg/catalog"

// Watermill topics published by the book repository. The payload of every
// topic is a catalog.ChangeEvent with Kind LIBRO.
const (
	TopicBookCreated = "book.created"
	TopicBookUpdated = "book.updated"
	TopicBookDeleted = "book.deleted"
)

// Topics lists every book topic, for subscribers.
var Topics = []string{TopicBookCreated, TopicBookUpdated, TopicBookDeleted}

// Topic maps a catalog action to its book topic.
func Topic(action catalog.Action) string {
	switch action {
	case catalog.ActionUpdated:
		return TopicBookUpdated
	case catalog.ActionDeleted:
		return TopicBookDeleted
	default:
		return TopicBookCreated
	}
}
