package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/eventsphere/internal/model"
)

// Publisher sends BookingRequestedEvent messages to RabbitMQ.  It opens a
// connection per message so a broker outage never leaves a stale channel
// behind; failures are logged and swallowed.
type Publisher struct {
	url     string
	timeout time.Duration
	log     *slog.Logger
}

func NewPublisher(url string, log *slog.Logger) *Publisher {
	return &Publisher{url: url, timeout: 3 * time.Second, log: log}
}

// BookingRequested publishes b.  It implements service.BookingEvents.
func (p *Publisher) BookingRequested(ctx context.Context, b model.Booking) {
	if err := p.Publish(ctx, NewBookingRequestedEvent(b)); err != nil {
		p.log.Warn("booking event not published", "booking_id", b.ID, "err", err)
	}
}

// Publish sends ev as a persistent JSON message to BookingQueueName.
func (p *Publisher) Publish(ctx context.Context, ev BookingRequestedEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(p.timeout)})
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if err := declareBookingQueue(ch); err != nil {
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx,
		"",               // default exchange
		BookingQueueName, // routing key = queue name
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			MessageId:    ev.BookingID,
			Body:         body,
		},
	)
}

func declareBookingQueue(ch *amqp.Channel) error {
	_, err := ch.QueueDeclare(BookingQueueName, true, false, false, false, nil)
	return err
}
