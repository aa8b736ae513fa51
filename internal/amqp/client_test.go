package amqp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noumi/internal/core"
	"noumi/internal/recap"
)

type fakeChannel struct {
	declareErr error
	publishErr error
	published  []amqp091.Publishing
	keys       []string
	deadline   bool
	deliveries chan amqp091.Delivery
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(string, string, bool, bool, bool, bool, amqp091.Table) error {
	return f.declareErr
}

func (f *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, _ amqp091.Table) (amqp091.Queue, error) {
	return amqp091.Queue{Name: name}, nil
}

func (f *fakeChannel) QueueBind(string, string, string, bool, amqp091.Table) error { return nil }

func (f *fakeChannel) PublishWithContext(ctx context.Context, _, key string, _, _ bool, msg amqp091.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	_, f.deadline = ctx.Deadline()
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp091.Table) (<-chan amqp091.Delivery, error) {
	return f.deliveries, nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type fakeAck struct {
	acked   int
	nacked  int
	requeue bool
}

func (a *fakeAck) Ack(uint64, bool) error { a.acked++; return nil }

func (a *fakeAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	a.requeue = requeue
	return nil
}

func (a *fakeAck) Reject(uint64, bool) error { return nil }

func sampleRecap() *recap.WeeklyRecap {
	streak := 3
	return &recap.WeeklyRecap{
		ID:        "0b5c4d3e-recap",
		WeekLabel: "06/09 - 06/15",
		Week: core.WeekRange{
			Start: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		Trend: &recap.TrendCard{TrendResult: core.TrendResult{
			Category:       "Shopping",
			DecreaseAmount: decimal.RequireFromString("910.76"),
		}},
		Goal:          &recap.GoalProgress{Percentage: 24},
		LongestStreak: &streak,
		Warnings:      []string{"savings: unavailable"},
	}
}

func TestNewRecapMessage(t *testing.T) {
	msg := NewRecapMessage(sampleRecap())
	assert.Equal(t, "0b5c4d3e-recap", msg.RecapID)
	assert.Equal(t, "Shopping", msg.TrendCategory)
	require.NotNil(t, msg.TrendDecrease)
	assert.Equal(t, "910.76", msg.TrendDecrease.String())
	require.NotNil(t, msg.GoalPercentage)
	assert.Equal(t, 24, *msg.GoalPercentage)
	assert.Equal(t, 1, msg.Warnings)

	empty := NewRecapMessage(&recap.WeeklyRecap{ID: "x"})
	assert.Nil(t, empty.TrendDecrease)
	assert.Nil(t, empty.GoalPercentage)
}

func TestRecapMessageFromJSON(t *testing.T) {
	body, err := NewRecapMessage(sampleRecap()).ToJSON()
	require.NoError(t, err)

	msg, err := RecapMessageFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, "06/09 - 06/15", msg.Week)
	assert.Equal(t, 3, *msg.LongestStreak)

	_, err = RecapMessageFromJSON([]byte(`{"week":"06/09 - 06/15"}`))
	assert.Error(t, err)
	_, err = RecapMessageFromJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestPublishRecap(t *testing.T) {
	ch := &fakeChannel{}
	c, err := newClient(ch, "noumi", "weekly_recaps", nil)
	require.NoError(t, err)

	require.NoError(t, c.PublishRecap(context.Background(), sampleRecap()))
	require.Len(t, ch.published, 1)
	assert.Equal(t, "weekly_recaps", ch.keys[0])
	assert.True(t, ch.deadline, "publish should carry a timeout")

	pub := ch.published[0]
	assert.Equal(t, "application/json", pub.ContentType)
	assert.Equal(t, amqp091.Persistent, pub.DeliveryMode)
	assert.Equal(t, "0b5c4d3e-recap", pub.MessageId)

	ch.publishErr = errors.New("channel closed")
	assert.ErrorContains(t, c.PublishRecap(context.Background(), sampleRecap()), "publish message")

	require.NoError(t, c.Close())
	assert.True(t, ch.closed)
}

func TestNewClient_SetupError(t *testing.T) {
	_, err := newClient(&fakeChannel{declareErr: errors.New("access refused")}, "noumi", "q", nil)
	assert.ErrorContains(t, err, "declare exchange")
}

func TestConsumeRecaps(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp091.Delivery, 3)}
	c, err := newClient(ch, "noumi", "weekly_recaps", nil)
	require.NoError(t, err)

	body, err := NewRecapMessage(sampleRecap()).ToJSON()
	require.NoError(t, err)

	good, bad, failing := &fakeAck{}, &fakeAck{}, &fakeAck{}
	ch.deliveries <- amqp091.Delivery{Acknowledger: good, Body: body}
	ch.deliveries <- amqp091.Delivery{Acknowledger: bad, Body: []byte("{")}
	ch.deliveries <- amqp091.Delivery{Acknowledger: failing, Body: body}
	close(ch.deliveries)

	calls := 0
	err = c.ConsumeRecaps(context.Background(), func(m *RecapMessage) error {
		calls++
		if calls == 2 {
			return errors.New("downstream busy")
		}
		return nil
	})
	assert.ErrorContains(t, err, "channel closed")
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, good.acked)
	assert.Equal(t, 1, bad.nacked)
	assert.False(t, bad.requeue)
	assert.Equal(t, 1, failing.nacked)
	assert.True(t, failing.requeue)
}

func TestConsumeRecaps_StopsOnCancel(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp091.Delivery)}
	c, err := newClient(ch, "noumi", "weekly_recaps", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = c.ConsumeRecaps(ctx, func(*RecapMessage) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
