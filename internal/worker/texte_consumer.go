package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/legicam/backend/internal/platform/queue"
	"github.com/legicam/backend/internal/service"
)

// TexteConsumer consomme les événements d'ingestion et lance la passe de
// détection automatique de relations sur le texte fraîchement ingéré
type TexteConsumer struct {
	consumer  queue.Consumer
	detection service.DetectionService
}

func NewTexteConsumer(consumer queue.Consumer, detection service.DetectionService) *TexteConsumer {
	return &TexteConsumer{
		consumer:  consumer,
		detection: detection,
	}
}

func (c *TexteConsumer) Start(ctx context.Context) error {
	log.Printf("[WORKER] Démarrage du TexteConsumer sur la file '%s'...", service.QueueTextesIngeres)

	handler := func(ctx context.Context, body []byte) error {
		var event service.TexteIngereEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("échec de désérialisation de l'événement: %w", err)
		}

		log.Printf("[WORKER] Détection de relations pour le texte: %s", event.TexteID)

		if err := c.detection.DetectRelations(ctx, event.TexteID); err != nil {
			return fmt.Errorf("détection échouée pour le texte %s: %w", event.TexteID, err)
		}

		return nil
	}

	return c.consumer.Consume(ctx, service.QueueTextesIngeres, handler)
}
