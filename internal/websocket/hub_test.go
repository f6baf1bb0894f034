package websocket_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/websocket"
)

var secret = []byte("test-secret")

func dial(t *testing.T, serverURL string, tenantID uuid.UUID) *gws.Conn {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"tenant_id": tenantID.String()}).SignedString(secret)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?token=" + token
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_PublishIsTenantScoped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := websocket.NewHub()
	go hub.Run()

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { websocket.ServeWs(hub, c, secret) })
	server := httptest.NewServer(router)
	defer server.Close()

	tenantA, tenantB := uuid.New(), uuid.New()
	connA := dial(t, server.URL, tenantA)
	connB := dial(t, server.URL, tenantB)

	require.Eventually(t, func() bool {
		return hub.ClientCount(tenantA) == 1 && hub.ClientCount(tenantB) == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Publish(tenantA, "invoice.created", map[string]string{"invoice_number": "INV-20260309-0001"})

	require.NoError(t, connA.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := connA.ReadMessage()
	require.NoError(t, err)

	var event websocket.Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "invoice.created", event.Type)

	require.NoError(t, connB.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = connB.ReadMessage()
	assert.Error(t, err, "tenant B must not receive tenant A's events")
}

func TestServeWs_RejectsMissingTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := websocket.NewHub()

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { websocket.ServeWs(hub, c, secret) })

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": uuid.NewString()}).SignedString(secret)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?token="+token, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHub_PublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := websocket.NewHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			hub.Publish(uuid.New(), "appointment.changed", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
}
