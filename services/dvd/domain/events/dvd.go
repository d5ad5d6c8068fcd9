package events

import "github.com/ghuser/biblioteca/pkg/catalog"

// Watermill topics published by the DVD repository. Payload: catalog.ChangeEvent.
const (
	TopicDVDCreated = "dvd.created"
	TopicDVDUpdated = "dvd.updated"
	TopicDVDDeleted = "dvd.deleted"
)

var Topics = []string{TopicDVDCreated, TopicDVDUpdated, TopicDVDDeleted}

func Topic(action catalog.Action) string {
	switch action {
	case catalog.ActionUpdated:
		return TopicDVDUpdated
	case catalog.ActionDeleted:
		return TopicDVDDeleted
	default:
		return TopicDVDCreated
	}
}
