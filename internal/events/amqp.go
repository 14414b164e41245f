package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	publishTimeout = 3 * time.Second
	dialTimeout    = 2 * time.Second

	defaultQueueSize = 256
	minBackoff       = 500 * time.Millisecond
	maxBackoff       = 30 * time.Second
)

var (
	ErrQueueFull       = errors.New("event queue full")
	ErrPublisherClosed = errors.New("event publisher closed")
)

type queued struct {
	ev   Event
	body []byte
}

// AMQPPublisher publishes events to a durable fanout exchange. Publish only
// enqueues; a single goroutine owns the connection, dials lazily and, after a
// failure, drops events until the backoff window has passed.
type AMQPPublisher struct {
	url      string
	exchange string
	dial     func(url string) (*amqp.Connection, error)
	now      func() time.Time

	queue     chan queued
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	// owned by run
	conn    *amqp.Connection
	ch      *amqp.Channel
	backoff time.Duration
	retryAt time.Time
}

func NewAMQPPublisher(url, exchange string) *AMQPPublisher {
	p := newAMQPPublisher(url, exchange, defaultQueueSize)
	p.wg.Add(1)
	go p.run()
	return p
}

func newAMQPPublisher(url, exchange string, size int) *AMQPPublisher {
	return &AMQPPublisher{
		url:      url,
		exchange: exchange,
		dial: func(url string) (*amqp.Connection, error) {
			return amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
		},
		now:   time.Now,
		queue: make(chan queued, size),
		done:  make(chan struct{}),
	}
}

// Publish never waits on the broker. It fails fast when the queue is full or
// the publisher has been closed.
func (p *AMQPPublisher) Publish(_ context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	select {
	case <-p.done:
		return ErrPublisherClosed
	default:
	}
	select {
	case p.queue <- queued{ev: ev, body: body}:
		return nil
	case <-p.done:
		return ErrPublisherClosed
	default:
		return ErrQueueFull
	}
}

func (p *AMQPPublisher) run() {
	defer p.wg.Done()
	for {
		select {
		case m := <-p.queue:
			p.deliver(m)
		case <-p.done:
			for {
				select {
				case m := <-p.queue:
					p.deliver(m)
				default:
					p.reset()
					return
				}
			}
		}
	}
}

func (p *AMQPPublisher) deliver(m queued) {
	if p.now().Before(p.retryAt) {
		log.Printf("[EVENTS] action=drop type=%s request_id=%s reason=backoff", m.ev.Type, m.ev.RequestID)
		return
	}
	if err := p.send(m); err != nil {
		p.reset()
		if p.backoff == 0 {
			p.backoff = minBackoff
		} else {
			p.backoff = min(p.backoff*2, maxBackoff)
		}
		p.retryAt = p.now().Add(p.backoff)
		log.Printf("[EVENTS] action=deliver type=%s request_id=%s retry_in=%s error=%q",
			m.ev.Type, m.ev.RequestID, p.backoff, err.Error())
		return
	}
	p.backoff = 0
	p.retryAt = time.Time{}
}

func (p *AMQPPublisher) send(m queued) error {
	ch, err := p.channel()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    m.ev.ID,
		Type:         m.ev.Type,
		Timestamp:    m.ev.OccurredAt,
		Body:         m.body,
	}
	if err := ch.PublishWithContext(ctx,
		p.exchange, // exchange
		m.ev.Type,  // routing key, ignored by fanout but useful to consumers
		false,      // mandatory
		false,      // immediate
		pub,
	); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}

// channel returns an open channel, dialling and declaring the exchange when needed.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := p.dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"fanout",   // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close stops accepting events, flushes what is queued and closes the
// connection. It is safe to call more than once.
func (p *AMQPPublisher) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	p.wg.Wait()
	return nil
}

// Emit publishes ev and only logs on failure. Writes have already committed by
// the time events go out, so a broker outage must not change the response.
func Emit(ctx context.Context, pub Publisher, ev Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(context.WithoutCancel(ctx), ev); err != nil {
		log.Printf("[EVENTS] action=publish type=%s request_id=%s error=%q", ev.Type, ev.RequestID, err.Error())
	}
}
