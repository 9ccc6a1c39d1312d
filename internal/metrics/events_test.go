package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RoleplayBot_Go/internal/event"
)

func TestEventMetricsCollector_Transfers(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	transfers := testutil.ToFloat64(Transfers.WithLabelValues(event.TransferSell))
	moved := testutil.ToFloat64(ItemsMoved.WithLabelValues(event.TransferSell))
	earned := testutil.ToFloat64(MoneyEarned)
	spent := testutil.ToFloat64(MoneySpent)

	require.NoError(t, bus.Publish(ctx, event.NewTransferEvent("1", event.TransferPayloadV1{
		Kind: event.TransferSell, Character: "bob", ItemID: "gem", Amount: 3, Money: 30,
	})))
	require.NoError(t, bus.Publish(ctx, event.NewTransferEvent("1", event.TransferPayloadV1{
		Kind: event.TransferPay, Character: "bob", Recipient: "amy", Money: -7,
	})))

	assert.Equal(t, transfers+1, testutil.ToFloat64(Transfers.WithLabelValues(event.TransferSell)))
	assert.Equal(t, moved+3, testutil.ToFloat64(ItemsMoved.WithLabelValues(event.TransferSell)))
	assert.Equal(t, earned+30, testutil.ToFloat64(MoneyEarned))
	assert.Equal(t, spent+7, testutil.ToFloat64(MoneySpent))
}

func TestEventMetricsCollector_ShopLifecycle(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	open := testutil.ToFloat64(ShopsOpen)
	idle := testutil.ToFloat64(ShopsClosed.WithLabelValues(event.ShopClosedIdle))

	require.NoError(t, bus.Publish(ctx, event.NewShopOpenedEvent("1", "m1")))
	assert.Equal(t, open+1, testutil.ToFloat64(ShopsOpen))

	require.NoError(t, bus.Publish(ctx, event.NewShopClosedEvent("1", "m1", event.ShopClosedIdle, 2*time.Minute)))
	assert.Equal(t, open, testutil.ToFloat64(ShopsOpen))
	assert.Equal(t, idle+1, testutil.ToFloat64(ShopsClosed.WithLabelValues(event.ShopClosedIdle)))
}

func TestEventMetricsCollector_Print(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	docs := testutil.ToFloat64(DocumentsPrinted)
	posts := testutil.ToFloat64(PostsPrinted)

	require.NoError(t, bus.Publish(context.Background(), event.NewPrintEvent("1", event.PrintPayloadV1{Document: "rules", Posts: 4})))

	assert.Equal(t, docs+1, testutil.ToFloat64(DocumentsPrinted))
	assert.Equal(t, posts+4, testutil.ToFloat64(PostsPrinted))
}

func TestEventMetricsCollector_UnexpectedPayload(t *testing.T) {
	errs := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.PrintCompleted)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: event.PrintCompleted, Payload: "nope"})

	require.NoError(t, err)
	assert.Equal(t, errs+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.PrintCompleted))))
}

func TestObserveCommand(t *testing.T) {
	ok := testutil.ToFloat64(CommandsTotal.WithLabelValues("bal", OutcomeSuccess))
	failed := testutil.ToFloat64(CommandsTotal.WithLabelValues("bal", OutcomeError))

	ObserveCommand("bal", 0.01, nil)
	ObserveCommand("bal", 0.01, assert.AnError)

	assert.Equal(t, ok+1, testutil.ToFloat64(CommandsTotal.WithLabelValues("bal", OutcomeSuccess)))
	assert.Equal(t, failed+1, testutil.ToFloat64(CommandsTotal.WithLabelValues("bal", OutcomeError)))
}

func TestMiddleware(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/teapot", "418"))

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/teapot", "418")))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}
