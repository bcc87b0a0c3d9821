package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openshelf/library-api/library/internal/model"
	"github.com/openshelf/library-api/pkg/kafka"
)

const (
	eventApproved    = "approved"
	eventDeclined    = "declined"
	eventReturned    = "returned"
	eventLost        = "lost"
	eventFineCreated = "fine_created"
)

type borrowEvent struct {
	Type     string    `json:"type"`
	RecordID uuid.UUID `json:"recordId"`
	BookID   uuid.UUID `json:"bookId"`
	UserID   uuid.UUID `json:"userId"`
	At       time.Time `json:"at"`
}

// publishEvent is fire-and-forget: a broker outage must not fail the
// lifecycle transition that already persisted.
func (s *Service) publishEvent(_ context.Context, eventType string, rec model.BorrowRecord) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(borrowEvent{
		Type:     eventType,
		RecordID: rec.ID,
		BookID:   rec.BookID,
		UserID:   rec.UserID,
		At:       time.Now(),
	})
	if err != nil {
		s.log.Error("marshal borrow event", zap.Error(err))
		return
	}
	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: kafka.BorrowEventsTopic,
		Key:   sarama.StringEncoder(rec.ID.String()),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		s.log.Error("publish borrow event", zap.String("type", eventType), zap.Error(err))
	}
}
