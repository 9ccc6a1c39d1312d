package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got TransferPayloadV1

	bus.Subscribe(TransferCompleted, func(_ context.Context, evt Event) error {
		payload, err := DecodePayload[TransferPayloadV1](evt.Payload)
		got = payload
		return err
	})

	err := bus.Publish(context.Background(), NewTransferEvent("1", TransferPayloadV1{Kind: TransferBuy, ItemID: "gem", Amount: 2, Money: -68}))

	require.NoError(t, err)
	assert.Equal(t, "gem", got.ItemID)
	assert.Equal(t, -68, got.Money)
	assert.NotZero(t, got.Timestamp)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(context.Context, Event) error {
		count++
		return nil
	}

	bus.Subscribe(ShopOpened, handler)
	bus.Subscribe(ShopOpened, handler)

	require.NoError(t, bus.Publish(context.Background(), NewShopOpenedEvent("1", "2")))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewMemoryBus().Publish(context.Background(), Event{Type: "nothing"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(ShopClosed, func(context.Context, Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), NewShopClosedEvent("1", "2", ShopClosedIdle, 0))
	assert.Error(t, err)

	assert.NotPanics(t, func() {
		Emit(context.Background(), bus, NewShopClosedEvent("1", "2", ShopClosedIdle, 0))
		Emit(context.Background(), nil, NewShopOpenedEvent("1", "2"))
	})
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	got, err := DecodePayload[PrintPayloadV1](map[string]any{"document": "rules", "posts": 3})

	require.NoError(t, err)
	assert.Equal(t, PrintPayloadV1{Document: "rules", Posts: 3}, got)
}
