package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/luxe-couture-api/internal/cfg"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Заголовки сообщения с событием витрины
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
)

// MessageWriter описывает часть kafka.Writer, через которую публикуются события.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует события витрины в Kafka. Запись асинхронная: ошибки доставки
// приходят в Completion и только логируются.
type Producer struct {
	writer MessageWriter
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %d messages lost: %s", len(messages), err.Error())
			}
		},
	}

	return NewProducerWithWriter(writer, logger, cfg)
}

func NewProducerWithWriter(writer MessageWriter, logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}
}

// Publish кодирует событие и ставит его в очередь на отправку. Ключ сообщения — тип события,
// так что события одного типа попадают в одну партицию и сохраняют порядок.
func (p *Producer) Publish(ctx context.Context, event *usecase.StorefrontEvent) error {
	value, err := EncodeEvent(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Type),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.ID)},
			{Key: HeaderEventType, Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// EnsureTopic создаёт топик, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

// Close дожидается отправки буферизованных сообщений.
func (p *Producer) Close(_ context.Context) error {
	return p.writer.Close()
}

// EncodeEvent сериализует событие в google.protobuf.Struct:
// {id, type, occurred_at (RFC 3339, UTC), payload}.
func EncodeEvent(event *usecase.StorefrontEvent) ([]byte, error) {
	payload := event.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	envelope, err := structpb.NewStruct(map[string]any{
		"id":          event.ID,
		"type":        event.Type,
		"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339Nano),
		"payload":     payload,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return proto.Marshal(envelope)
}
