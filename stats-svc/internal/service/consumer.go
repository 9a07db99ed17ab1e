package service

import (
	"context"
	"encoding/json"
	"log"

	"tiedan-noodle/stats-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads submissions until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Stats Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Stats consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessSubmission(ctx, msg)
	}
}

func (c *Consumer) ProcessSubmission(ctx context.Context, msg domain.KafkaMessage) {
	switch msg.Type {
	case domain.EventOrderSubmitted, domain.EventReservationSubmitted:
	default:
		log.Printf("Skipping message %q of type %q", msg.ID, msg.Type)
		return
	}

	if msg.ID != "" {
		first, err := c.Store.MarkProcessed(ctx, msg.ID)
		if err != nil {
			log.Printf("Error marking %s processed: %v", msg.ID, err)
			return
		}
		if !first {
			log.Printf("Submission %s already counted", msg.ID)
			return
		}
	}

	var err error
	switch msg.Type {
	case domain.EventOrderSubmitted:
		log.Printf("Processing order: ID=%s, Items=%d", msg.ID, len(msg.Items))
		err = c.Store.RecordOrder(ctx, msg.Timestamp, msg.Items)
	case domain.EventReservationSubmitted:
		log.Printf("Processing reservation: ID=%s, Date=%s, PartySize=%d", msg.ID, msg.Date, msg.PartySize)
		err = c.Store.RecordReservation(ctx, msg.Date, msg.PartySize)
	}
	if err != nil {
		log.Printf("Error recording %s: %v", msg.ID, err)
		if msg.ID != "" {
			if uerr := c.Store.UnmarkProcessed(ctx, msg.ID); uerr != nil {
				log.Printf("Error releasing processed marker for %s: %v", msg.ID, uerr)
			}
		}
		return
	}

	log.Printf("Successfully processed %s", msg.ID)
}
