package live

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-greeting-cards/internal/adapter"
	"github.com/feral-file/ff-greeting-cards/internal/api/shared/constants"
	"github.com/feral-file/ff-greeting-cards/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-greeting-cards/internal/api/shared/errors"
	"github.com/feral-file/ff-greeting-cards/internal/collection"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
	"github.com/feral-file/ff-greeting-cards/internal/search"
)

// Config holds the live search configuration
type Config struct {
	QuietPeriod    time.Duration
	AllowedOrigins []string // empty allows every origin
}

// Handler serves debounced searches over a websocket.
// Each connection owns one debounced search; every inbound message replaces the pending one.
type Handler struct {
	config     Config
	collection collection.Collection
	engine     *search.Engine
	clock      adapter.Clock
	upgrader   websocket.Upgrader
}

// NewHandler creates a live search handler
func NewHandler(cfg Config, coll collection.Collection, engine *search.Engine, clock adapter.Clock) *Handler {
	if cfg.QuietPeriod <= 0 {
		cfg.QuietPeriod = search.DefaultQuietPeriod
	}

	h := &Handler{
		config:     cfg,
		collection: coll,
		engine:     engine,
		clock:      clock,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin:     h.checkOrigin,
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
	}

	return h
}

// SetupRoutes registers the live search endpoint
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.GET("/api/v1/cards/live", h.Serve)
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.config.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(h.config.AllowedOrigins, r.Header.Get("Origin"))
}

// session is the state of one live connection
type session struct {
	id    string
	conn  *websocket.Conn
	send  chan dto.LiveSearchMessage
	done  chan struct{}
	limit atomic.Int64
}

// Serve upgrades the connection and runs the session until the client leaves
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WarnCtx(c.Request.Context(), "Failed to upgrade live search connection", zap.Error(err))
		return
	}

	s := &session{
		id:   ulid.Make().String(),
		conn: conn,
		send: make(chan dto.LiveSearchMessage, constants.LIVE_SEND_BUFFER),
		done: make(chan struct{}),
	}
	s.limit.Store(constants.DEFAULT_CARDS_LIMIT)

	ctx := c.Request.Context()
	log := logger.FromContext(ctx).With(zap.String("session_id", s.id))
	log.Info("Live search session opened", zap.String("remote_addr", conn.RemoteAddr().String()))

	ds := search.NewDebouncedSearch(h.engine, h.clock, h.config.QuietPeriod,
		func() []domain.TokenRecord { return h.collection.Records() },
		func(r search.Result) { h.publish(s, r) },
	)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.writeLoop(ctx, s)
	}()

	s.enqueue(dto.LiveSearchMessage{Type: "session", SessionID: s.id, SentAt: h.clock.Now()})
	h.readLoop(ctx, s, ds)

	ds.Cancel()
	close(s.done)
	<-writerDone
	_ = conn.Close()

	log.Info("Live search session closed")
}

// readLoop feeds every inbound request to the debounced search
func (h *Handler) readLoop(ctx context.Context, s *session, ds *search.DebouncedSearch) {
	s.conn.SetReadLimit(constants.LIVE_MAX_MESSAGE_SIZE)
	_ = s.conn.SetReadDeadline(time.Now().Add(constants.LIVE_PONG_WAIT))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(constants.LIVE_PONG_WAIT))
	})

	for {
		messageType, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WarnCtx(ctx, "Live search connection closed unexpectedly",
					zap.String("session_id", s.id),
					zap.Error(err),
				)
			}
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		var req dto.LiveSearchRequest
		if err := json.Unmarshal(message, &req); err != nil {
			s.enqueue(dto.LiveSearchMessage{
				Type:      "error",
				SessionID: s.id,
				Error:     apierrors.NewBadRequestError("Invalid search request", err.Error()),
				SentAt:    h.clock.Now(),
			})
			continue
		}

		criteria := domain.DefaultCriteria()
		if req.Criteria != nil {
			criteria = *req.Criteria
		}
		if req.Limit > 0 {
			s.limit.Store(int64(min(req.Limit, constants.MAX_PAGE_SIZE)))
		}

		ds.Search(req.Term, criteria)
	}
}

// publish turns a search result into an outbound message
func (h *Handler) publish(s *session, r search.Result) {
	snap := dto.MapSnapshotInfo(h.collection.Snapshot())
	records := r.Records
	if limit := int(s.limit.Load()); len(records) > limit {
		records = records[:limit]
	}

	s.enqueue(dto.LiveSearchMessage{
		Type:      "results",
		SessionID: s.id,
		Term:      r.Term,
		Cards:     dto.MapRecordsToDTO(records),
		Total:     len(r.Records),
		Snapshot:  &snap,
		SentAt:    h.clock.Now(),
	})
}

// enqueue hands a message to the writer; it drops the message once the session is closed or
// when the client does not keep up
func (s *session) enqueue(msg dto.LiveSearchMessage) {
	select {
	case <-s.done:
	case s.send <- msg:
	default:
		logger.Warn("Dropping live search message, client too slow",
			zap.String("session_id", s.id),
			zap.String("type", msg.Type),
		)
	}
}

// writeLoop is the only writer of the connection
func (h *Handler) writeLoop(ctx context.Context, s *session) {
	ticker := time.NewTicker(constants.LIVE_PING_PERIOD)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(constants.LIVE_WRITE_WAIT))
			return

		case msg := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(constants.LIVE_WRITE_WAIT))
			if err := s.conn.WriteJSON(msg); err != nil {
				logger.WarnCtx(ctx, "Failed to write live search message",
					zap.String("session_id", s.id),
					zap.Error(err),
				)
				_ = s.conn.Close()
				<-s.done
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(constants.LIVE_WRITE_WAIT))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = s.conn.Close()
				<-s.done
				return
			}
		}
	}
}
