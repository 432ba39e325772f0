package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-presenter/internal/config"
	"github.com/couchcryptid/weather-presenter/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces messages to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic. Messages
// are hashed by widget id so every widget's presentations stay ordered.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes rendered presentations to the sink Kafka
// topic in a single WriteMessages call.
func (w *Writer) LoadBatch(ctx context.Context, presentations []domain.RenderedPresentation) error {
	if len(presentations) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(presentations))
	for i := range presentations {
		msg, err := serializeToMessage(presentations[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a RenderedPresentation into a Kafka message.
func serializeToMessage(rp domain.RenderedPresentation) (kafkago.Message, error) {
	data, err := json.Marshal(rp)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize presentation %s: %w", rp.WidgetID, err)
	}
	return kafkago.Message{
		Key:   []byte(rp.WidgetID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "view_style", Value: []byte(rp.Presentation.ViewStyle)},
			{Key: "widget_kind", Value: []byte(rp.Kind)},
			{Key: "rendered_at", Value: []byte(rp.RenderedAt.Format(time.RFC3339))},
		},
	}, nil
}
