package ws

import (
	"net/http"
	"time"

	models "StockCast/internal/domain/models"
	domrepo "StockCast/internal/domain/repository"
	"StockCast/internal/usecase"
	xhttp "StockCast/pkg/http"
	xlogger "StockCast/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// SessionHandler hosts interactive dashboard sessions over WebSocket. Each
// connection gets its own controller; inbound frames are view-state changes,
// outbound frames are committed snapshots.
type SessionHandler struct {
	logger  *xlogger.Logger
	charts  *usecase.ChartService
	catalog domrepo.Catalog
}

func NewSessionHandler(logger *xlogger.Logger, charts *usecase.ChartService, catalog domrepo.Catalog) *SessionHandler {
	return &SessionHandler{logger: logger, charts: charts, catalog: catalog}
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/session", h.Session)
}

func (h *SessionHandler) Session(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", xlogger.Error(err))
		return err
	}

	ctrl := usecase.NewController(h.charts, h.logger)
	s := &session{
		conn:   conn,
		ctrl:   ctrl,
		logger: h.logger,
		send:   make(chan any, 16),
		done:   make(chan struct{}),
	}

	// Kick off with the first catalog entry so the client gets a chart
	// without sending anything.
	if instruments := h.catalog.Instruments(); len(instruments) > 0 {
		ctrl.Apply(models.ViewState{
			Instrument:  instruments[0].Symbol,
			HorizonDays: 30,
			ActiveView:  models.ViewHistorical,
		})
	}

	go s.writePump()
	s.readPump(c)
	return nil
}

type session struct {
	conn   *websocket.Conn
	ctrl   *usecase.Controller
	logger *xlogger.Logger
	send   chan any
	done   chan struct{}
}

type errorFrame struct {
	Error any `json:"error"`
}

func (s *session) readPump(c echo.Context) {
	defer func() {
		s.ctrl.Close()
		close(s.done)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(readLimit)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg models.ViewChange
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", xlogger.Error(err))
			}
			return
		}
		if verr := xhttp.ValidateStruct(c.Request().Context(), &msg); verr != nil {
			select {
			case s.send <- errorFrame{Error: verr}:
			default:
			}
			continue
		}
		s.ctrl.Apply(models.ViewState{
			Instrument:  msg.Symbol,
			HorizonDays: msg.Horizon,
			ActiveView:  msg.View,
		})
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case snap := <-s.ctrl.Updates():
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(snap); err != nil {
				return
			}
		case frame := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(frame); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}
