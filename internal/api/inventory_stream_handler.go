package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kingrain94/dealer-api/internal/api/dto"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
	websocketReadLimit             = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventBroker carries car events between API instances
type EventBroker interface {
	Publish(ctx context.Context, event *dto.CarEvent) error
	Subscribe(ctx context.Context, tenantID uint, callback func(*dto.CarEvent)) error
	Unsubscribe(tenantID uint)
	Close()
}

type streamClient struct {
	conn     *websocket.Conn
	tenantID uint
	send     chan []byte
}

// InventoryStreamHandler pushes car events to the WebSocket clients of the car's tenant.
// Each instance subscribes to a tenant's channel while it has at least one client of that tenant.
type InventoryStreamHandler struct {
	*BaseHandler
	broker        EventBroker
	clients       map[*streamClient]bool
	tenantClients map[uint]int
	register      chan *streamClient
	unregister    chan *streamClient
	mutex         sync.RWMutex
	ctx           context.Context
	cancel        context.CancelFunc
}

func NewInventoryStreamHandler(base *BaseHandler, broker EventBroker) *InventoryStreamHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &InventoryStreamHandler{
		BaseHandler:   base,
		broker:        broker,
		clients:       make(map[*streamClient]bool),
		tenantClients: make(map[uint]int),
		register:      make(chan *streamClient),
		unregister:    make(chan *streamClient),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// HandleStream godoc
// @Summary Inventory event stream
// @Description Upgrades to a WebSocket that receives car.created, car.updated and car.deleted events of the caller's tenant
// @Tags cars
// @Security BearerAuth
// @Success 101
// @Failure 401 {object} dto.Error
// @Router /cars/stream [get]
func (h *InventoryStreamHandler) HandleStream(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the error response
		h.logger.Warn("Failed to upgrade inventory stream", zap.Error(err))
		return
	}

	client := &streamClient{
		conn:     conn,
		tenantID: principal.TenantID,
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}

	select {
	case h.register <- client:
	case <-h.ctx.Done():
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
}

// Start runs the hub loop until Stop is called. Subscriptions are only changed here.
func (h *InventoryStreamHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.tenantClients[client.tenantID]++
			first := h.tenantClients[client.tenantID] == 1
			h.mutex.Unlock()

			if first {
				if err := h.broker.Subscribe(h.ctx, client.tenantID, h.deliver); err != nil {
					h.logger.Error("Failed to subscribe to tenant inventory", err, zap.Uint("tenant_id", client.tenantID))
					// drop the client so the tenant's next connection subscribes again
					h.drop(client)
				}
			}

		case client := <-h.unregister:
			if h.drop(client) {
				h.broker.Unsubscribe(client.tenantID)
			}

		case <-h.ctx.Done():
			return
		}
	}
}

// drop forgets client and closes its send channel, which ends its write pump.
// It reports whether client was the tenant's last local client.
func (h *InventoryStreamHandler) drop(client *streamClient) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; !ok {
		return false
	}
	delete(h.clients, client)
	close(client.send)

	h.tenantClients[client.tenantID]--
	if h.tenantClients[client.tenantID] > 0 {
		return false
	}
	delete(h.tenantClients, client.tenantID)
	return true
}

func (h *InventoryStreamHandler) Stop() {
	h.cancel()
	h.broker.Close()
}

// deliver queues an event for every local client of its tenant. A client whose buffer is
// full is disconnected; its read pump then unregisters it.
func (h *InventoryStreamHandler) deliver(event *dto.CarEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal car event", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.tenantID != event.TenantID {
			continue
		}
		select {
		case client.send <- message:
		default:
			h.logger.Warn("Dropping slow inventory stream client", zap.Uint("tenant_id", client.tenantID))
			client.conn.Close()
		}
	}
}

func (h *InventoryStreamHandler) writePump(client *streamClient) {
	defer client.conn.Close()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	_ = client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *InventoryStreamHandler) readPump(client *streamClient) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
		client.conn.Close()
	}()

	client.conn.SetReadLimit(websocketReadLimit)
	for {
		// the stream is one way; reading only detects the client going away
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Unexpected inventory stream close", zap.Uint("tenant_id", client.tenantID), zap.Error(err))
			}
			return
		}
	}
}

// BroadcastCarEvent publishes event to every instance serving its tenant
func (h *InventoryStreamHandler) BroadcastCarEvent(event *dto.CarEvent) {
	if err := h.broker.Publish(h.ctx, event); err != nil {
		h.logger.Error("Failed to publish car event", err, zap.Uint("tenant_id", event.TenantID))
	}
}
