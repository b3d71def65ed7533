package feed

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-backoffice-service/internal/auth"
	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/notification"
	"github.com/fekuna/omnipos-backoffice-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/internal/server/response"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	eventNotification = "notification"
	eventDoneLoading  = "done_loading"

	writeTimeout = 10 * time.Second
)

// Frame is one message pushed over the feed. A notification frame carries
// payloads; a done_loading frame closes every poll cycle whether or not a
// payload was sent, so clients know the cycle finished.
type Frame struct {
	Event         string               `json:"event"`
	Notifications []model.Notification `json:"notifications,omitempty"`
}

// Feed pushes unseen notifications to connected clients. Each connection
// gets its own poll loop on a fixed interval; polls are independent, a slow
// client simply misses cycles until it reconnects.
type Feed struct {
	uc       notification.UseCase
	logger   logger.ZapLogger
	clock    clockwork.Clock
	interval time.Duration
	limit    int
	upgrader websocket.Upgrader
}

func NewFeed(uc notification.UseCase, log logger.ZapLogger, clock clockwork.Clock, interval time.Duration, limit int) *Feed {
	return &Feed{
		uc:       uc,
		logger:   log,
		clock:    clock,
		interval: interval,
		limit:    limit,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades the request and runs the poll loop until the client goes
// away. The business comes from the authenticated claims, never the client.
func (f *Feed) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFrom(r.Context())
	if !ok || claims.BusinessID == 0 {
		response.Error(w, http.StatusUnauthorized, "No token provided.")
		return
	}

	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	// Blocks until the client goes away; the request context stays alive
	// for as long as the handler runs.
	f.run(r.Context(), claims.BusinessID, conn)
}

func (f *Feed) run(ctx context.Context, businessID int64, conn *websocket.Conn) {
	defer conn.Close()

	f.logger.Info("feed client connected", zap.Int64("business_id", businessID))
	defer f.logger.Info("feed client disconnected", zap.Int64("business_id", businessID))

	// Reader goroutine only detects the peer closing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(frame Frame) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		return conn.WriteJSON(frame)
	}

	ticker := f.clock.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case <-ticker.Chan():
			if err := f.poll(ctx, businessID, send); err != nil {
				return
			}
		}
	}
}

// poll runs one feed cycle: push unseen notifications if there are any,
// then always signal done_loading.
func (f *Feed) poll(ctx context.Context, businessID int64, send func(Frame) error) error {
	notifications, err := f.uc.Unseen(ctx, businessID, f.limit)
	if err != nil {
		// Fetch failures don't kill the connection; the next cycle retries.
		f.logger.Error("fetch unseen notifications",
			zap.Int64("business_id", businessID), zap.Error(err))
	} else if len(notifications) > 0 {
		if err := send(Frame{Event: eventNotification, Notifications: notifications}); err != nil {
			return err
		}
	}

	return send(Frame{Event: eventDoneLoading})
}
