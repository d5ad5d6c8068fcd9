package events

import "github.com/ghuser/biblioteca/pkg/catalog"

// Watermill topics published by the magazine repository. Payload: catalog.ChangeEvent.
const (
	TopicMagazineCreated = "magazine.created"
	TopicMagazineUpdated = "magazine.updated"
	TopicMagazineDeleted = "magazine.deleted"
)

var Topics = []string{TopicMagazineCreated, TopicMagazineUpdated, TopicMagazineDeleted}

func Topic(action catalog.Action) string {
	switch action {
	case catalog.ActionUpdated:
		return TopicMagazineUpdated
	case catalog.ActionDeleted:
		return TopicMagazineDeleted
	default:
		return TopicMagazineCreated
	}
}
