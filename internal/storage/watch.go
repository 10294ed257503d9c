package storage

import (
	"context"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"

	"github.com/manav03panchal/studypace/internal/model"
)

// Event describes a single key change observed by a watch.
type Event struct {
	Key     string
	Value   []byte
	Deleted bool
}

// Watch streams changes to keys under the given prefix until ctx is
// cancelled. The returned channel is closed when the subscription ends.
// Callers get the initial state from a normal read; the stream carries
// updates only.
func (d *DB) Watch(ctx context.Context, prefix string, buffer int) <-chan Event {
	events := make(chan Event, buffer)

	go func() {
		defer close(events)
		_ = d.db.Subscribe(ctx, func(kv *badger.KVList) error {
			for _, item := range kv.Kv {
				ev := Event{
					Key:     string(item.Key),
					Value:   item.Value,
					Deleted: len(item.Value) == 0,
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		}, []pb.Match{{Prefix: []byte(prefix)}})
	}()

	return events
}

// WatchOwner streams changes to all of an owner's materials, todo entries,
// and progress logs.
func (d *DB) WatchOwner(ctx context.Context, ownerKey string) <-chan Event {
	merged := make(chan Event, 16)
	prefixes := []string{
		model.PrefixMaterial + ":" + ownerKey + ":",
		model.PrefixTodo + ":" + ownerKey + ":",
		model.PrefixProgress + ":" + ownerKey + ":",
	}

	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{}, len(prefixes))

	for _, prefix := range prefixes {
		ch := d.Watch(subCtx, prefix, 16)
		go func() {
			for ev := range ch {
				select {
				case merged <- ev:
				case <-subCtx.Done():
				}
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for range prefixes {
			<-done
		}
		cancel()
		close(merged)
	}()

	return merged
}
