package events

import (
	"encoding/json"
	"time"

	"shipment-tracker/internal/logger"
	"shipment-tracker/pkg/mqtt"

	"go.uber.org/zap"
)

// StatusEvent is published whenever a shipment's status changes.
type StatusEvent struct {
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	Location       string    `json:"location"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Notifier delivers status-change events to interested consumers.
// Delivery is best effort: a failed publish must never fail the request.
type Notifier interface {
	NotifyStatusChange(event StatusEvent)
}

// NoopNotifier is used when no broker is configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyStatusChange(StatusEvent) {}

// MQTTNotifier publishes status events as JSON to a fixed topic.
type MQTTNotifier struct {
	client *mqtt.Client
	topic  string
}

func NewMQTTNotifier(client *mqtt.Client, topic string) *MQTTNotifier {
	return &MQTTNotifier{client: client, topic: topic}
}

func (n *MQTTNotifier) NotifyStatusChange(event StatusEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal status event", zap.Error(err))
		return
	}

	if err := n.client.Publish(n.topic, 1, false, payload); err != nil {
		logger.Error("Failed to publish status event",
			zap.String("tracking_number", event.TrackingNumber),
			zap.String("status", event.Status),
			zap.Error(err),
		)
		return
	}

	logger.Debug("Status event published",
		zap.String("tracking_number", event.TrackingNumber),
		zap.String("status", event.Status),
	)
}
