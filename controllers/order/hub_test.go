package orderControllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func newHubServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewHub(zap.NewNop())
	r := gin.New()
	r.GET("/orders/ws", OrderWebSocketHandler(hub))
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return conn
}

func TestHub_BroadcastsEvents(t *testing.T) {
	hub, srv := newHubServer(t)
	a := dial(t, srv)
	defer a.Close()
	b := dial(t, srv)
	defer b.Close()
	require.Eventually(t, func() bool { return hub.Len() == 2 }, time.Second, 10*time.Millisecond)

	hub.Notify(store.Event{
		Type:        store.EventReviewAdded,
		OrderID:     "order-1",
		ProductID:   "p3",
		Review:      models.Review{ID: "review-1", Rating: 4},
		Rating:      4.3,
		ReviewCount: 3,
	})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var got store.Event
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, store.EventReviewAdded, got.Type)
		assert.Equal(t, "p3", got.ProductID)
		assert.Equal(t, 3, got.ReviewCount)
		assert.Equal(t, "review-1", got.Review.ID)
	}
}

func TestHub_OmitsReviewerID(t *testing.T) {
	hub, srv := newHubServer(t)
	conn := dial(t, srv)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	hub.Notify(store.Event{Type: store.EventReviewAdded, UserID: "buyer-uid", OrderID: "order-1", ProductID: "p3"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"orderId":"order-1"`)
	assert.NotContains(t, string(data), "buyer-uid")
	assert.NotContains(t, string(data), "userId")
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub, srv := newHubServer(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 10*time.Millisecond)

	// Notifying with nobody listening is a no-op.
	hub.Notify(store.Event{Type: store.EventReviewAdded})
}

func TestHub_CloseDisconnectsSubscribers(t *testing.T) {
	hub, srv := newHubServer(t)
	conn := dial(t, srv)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, hub.Len())

	// A closed hub refuses new subscribers.
	late := dial(t, srv)
	defer late.Close()
	require.NoError(t, late.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = late.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, hub.Len())
}
