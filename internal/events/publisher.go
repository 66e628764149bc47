package events

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/logger"

	"github.com/segmentio/kafka-go"
)

// ErrPublisherClosed 发布器已关闭
var ErrPublisherClosed = errors.New("event publisher closed")

// ErrPublisherBusy 发送缓冲已满
var ErrPublisherBusy = errors.New("event publisher buffer full")

const defaultBuffer = 64

// Publisher 事件发布接口
type Publisher interface {
	Publish(ctx context.Context, event *Envelope) error
	Close() error
}

// NopPublisher 未启用事件时使用
type NopPublisher struct{}

// Publish 丢弃事件
func (NopPublisher) Publish(context.Context, *Envelope) error { return nil }

// Close 无操作
func (NopPublisher) Close() error { return nil }

// New 按配置创建发布器，未启用时返回 NopPublisher
func New(cfg *config.EventsConfig) Publisher {
	if cfg == nil || !cfg.Enabled || len(cfg.Brokers) == 0 || strings.TrimSpace(cfg.Topic) == "" {
		return NopPublisher{}
	}
	p := NewKafkaPublisher(cfg.Brokers, cfg.Topic, cfg.Buffer)
	p.Start()
	return p
}

// messageWriter kafka.Writer 的最小子集
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher 基于 kafka-go 的异步发布器
// Publish 只入队，后台协程负责写入与失败日志
type KafkaPublisher struct {
	w      messageWriter
	topic  string
	inbox  chan kafka.Message
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
}

// NewKafkaPublisher 创建发布器，需调用 Start 启动发送协程
func NewKafkaPublisher(brokers []string, topic string, buf int) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
	return newKafkaPublisher(writer, topic, buf)
}

func newKafkaPublisher(w messageWriter, topic string, buf int) *KafkaPublisher {
	if buf <= 0 {
		buf = defaultBuffer
	}
	return &KafkaPublisher{
		w:     w,
		topic: topic,
		inbox: make(chan kafka.Message, buf),
		done:  make(chan struct{}),
	}
}

// Start 启动发送协程
func (p *KafkaPublisher) Start() {
	go p.loop()
}

func (p *KafkaPublisher) loop() {
	defer close(p.done)
	for msg := range p.inbox {
		if err := p.w.WriteMessages(context.Background(), msg); err != nil {
			logger.Warnw("event_publish_failed",
				"topic", p.topic,
				"key", string(msg.Key),
				"error", err,
			)
			continue
		}
		logger.Debugw("event_published", "topic", p.topic, "key", string(msg.Key))
	}
}

// Publish 事件入队，缓冲已满时返回 ErrPublisherBusy
func (p *KafkaPublisher) Publish(ctx context.Context, event *Envelope) error {
	if event == nil {
		return nil
	}
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   event.PartitionKey(),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(event.EventType)},
			{Key: headerEventVersion, Value: []byte(strconv.Itoa(event.EventVersion))},
		},
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.inbox <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrPublisherBusy
	}
}

// Close 停止接收新事件，等待缓冲发送完毕后关闭 writer
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.inbox)
	p.mu.Unlock()

	<-p.done
	return p.w.Close()
}
