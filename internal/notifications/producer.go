// Package notifications publishes booking lifecycle events to Kafka so
// downstream consumers (mailers, dashboards) can react to them.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"ballroomly/internal/bookings"

	"github.com/IBM/sarama"
)

const (
	EventTypeBookingCreated       = "booking.created"
	EventTypeBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the wire format published to the booking events topic.
type BookingEvent struct {
	Type           string    `json:"type"`
	BookingID      uint      `json:"booking_id"`
	BallroomID     uint      `json:"ballroom_id"`
	CustomerEmail  string    `json:"customer_email"`
	EventDate      time.Time `json:"event_date"`
	GuestCount     int       `json:"guest_count"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ProducerConfig contains Kafka producer settings.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	RetryMax     int
	Timeout      time.Duration
	RequiredAcks sarama.RequiredAcks
}

// DefaultProducerConfig returns settings suitable for local development.
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "booking-events",
		RetryMax:     3,
		Timeout:      10 * time.Second,
		RequiredAcks: sarama.WaitForAll,
	}
}

// KafkaProducer publishes booking events to Kafka. It implements
// bookings.EventPublisher.
type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaProducer(config *ProducerConfig) (*KafkaProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout

	// Hash partitioning keeps all events of one booking on one partition.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaProducer{
		producer: producer,
		topic:    config.Topic,
	}, nil
}

// BookingCreated publishes a booking.created event.
func (p *KafkaProducer) BookingCreated(ctx context.Context, booking *bookings.Booking) error {
	return p.publish(eventFromBooking(EventTypeBookingCreated, booking, ""))
}

// BookingStatusChanged publishes a booking.status_changed event.
func (p *KafkaProducer) BookingStatusChanged(ctx context.Context, booking *bookings.Booking, previous bookings.Status) error {
	return p.publish(eventFromBooking(EventTypeBookingStatusChanged, booking, string(previous)))
}

func (p *KafkaProducer) publish(event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(uint64(event.BookingID), 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event to Kafka: %w", err)
	}

	log.Printf("Booking event published - Topic: %s, Partition: %d, Offset: %d, Type: %s, Booking: %d",
		p.topic, partition, offset, event.Type, event.BookingID)

	return nil
}

// Close closes the underlying Kafka producer.
func (p *KafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

func eventFromBooking(eventType string, booking *bookings.Booking, previous string) BookingEvent {
	return BookingEvent{
		Type:           eventType,
		BookingID:      booking.ID,
		BallroomID:     booking.BallroomID,
		CustomerEmail:  booking.CustomerEmail,
		EventDate:      booking.EventDate,
		GuestCount:     booking.GuestCount,
		Status:         string(booking.Status),
		PreviousStatus: previous,
		OccurredAt:     time.Now().UTC(),
	}
}
