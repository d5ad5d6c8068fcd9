package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/biblioteca/pkg/cache"
	"github.com/ghuser/biblioteca/pkg/catalog"
	"github.com/ghuser/biblioteca/pkg/logger"
)

// cacheTarget keeps the DTO cache of one catalog in step with its events.
type cacheTarget struct {
	warm  func(ctx context.Context, id int64) error
	evict func(ctx context.Context, id int64) error
}

// entryTarget warms through the service read path, which fills the cache on
// a miss, and evicts straight from the cache.
func entryTarget[D any](c *cache.EntryCache[D], find func(context.Context, int64) (D, bool, error)) cacheTarget {
	return cacheTarget{
		warm: func(ctx context.Context, id int64) error {
			_, _, err := find(ctx, id)
			return err
		},
		evict: func(ctx context.Context, id int64) error {
			return c.Delete(ctx, strconv.FormatInt(id, 10))
		},
	}
}

// cacheSync handles every catalog topic. Cache maintenance is best-effort:
// failures are logged and the message is still acked, because a stale entry
// expires on its own TTL. Only undecodable payloads are returned as errors.
type cacheSync struct {
	targets         map[catalog.Kind]cacheTarget
	invalidateStats func(context.Context) error
	log             logger.Logger
}

func (s *cacheSync) Handle(ctx context.Context, msg *message.Message) error {
	var evt catalog.ChangeEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode catalog event %s: %w", msg.UUID, err)
	}

	log := s.log.With("kind", evt.Kind, "item_id", evt.ItemID, "action", evt.Action)
	if target, ok := s.targets[evt.Kind]; !ok {
		log.WarnContext(ctx, "no cache registered for catalog event")
	} else {
		var err error
		switch evt.Action {
		case catalog.ActionCreated:
			err = target.warm(ctx, evt.ItemID)
		case catalog.ActionUpdated, catalog.ActionDeleted:
			err = target.evict(ctx, evt.ItemID)
		}
		if err != nil {
			log.WarnContext(ctx, "cache sync failed", "error", err)
		} else {
			log.DebugContext(ctx, "cache synced")
		}
	}

	if s.invalidateStats != nil {
		if err := s.invalidateStats(ctx); err != nil {
			log.WarnContext(ctx, "dashboard cache invalidation failed", "error", err)
		}
	}
	return nil
}
