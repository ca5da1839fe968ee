package mq

import (
	"context"
	"encoding/json"
	"log"

	"everbloom/models"
	"everbloom/rdx"
	"everbloom/search"
)

const indexingChannel = "indexing-events"

// Emit publishes an indexing event to Redis for asynchronous processing.
func Emit(ctx context.Context, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("mq: marshal event: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, indexingChannel, data).Err(); err != nil {
		log.Printf("mq: publish event: %v", err)
	}
}

// StartIndexingWorker consumes indexing events until the subscription is
// closed. Run it in its own goroutine.
func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, indexingChannel)
	ch := sub.Channel()

	log.Println("indexing worker listening")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("mq: bad event payload: %v", err)
			continue
		}
		if err := search.IndexEvent(ctx, event); err != nil {
			log.Printf("mq: index %s/%s: %v", event.EntityType, event.EntityId, err)
		}
	}
}
