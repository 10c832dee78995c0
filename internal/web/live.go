package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Kavindu379/portfolio/internal/particles"
	"github.com/Kavindu379/portfolio/internal/ui"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveFrame is what the server sends down the socket after every change.
type liveFrame struct {
	Snapshot ui.Snapshot  `json:"snapshot"`
	Page     ui.PageState `json:"page"`
	Commands []ui.Command `json:"commands,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// liveConn serializes writes; session timers push from their own goroutines.
type liveConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
	doc  *ui.Document
}

func (l *liveConn) send(snap ui.Snapshot, errMsg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	frame := liveFrame{Snapshot: snap, Page: l.doc.State(), Commands: l.doc.Drain(), Error: errMsg}
	if err := l.conn.WriteJSON(frame); err != nil {
		log.Printf("live: websocket write: %v", err)
	}
}

// newPageSession builds the presentation session for one page view.
func (s *Server) newPageSession(doc *ui.Document, visitorID string, theme ui.Theme, onChange func(ui.Snapshot)) *ui.Session {
	catalog := s.content.Catalog()
	effects := ui.NewEffects(
		ui.NewBrowserEffect(doc, ui.RevealEffect, ui.DefaultReveal),
		ui.NewBrowserEffect(doc, "preloader-typewriter", ui.PreloaderTypewriter),
		ui.NewBrowserEffect(doc, "roles-typewriter", ui.RolesTypewriter(catalog.Profile.Roles)),
		ui.NewBrowserEffect(doc, "tilt", ui.DefaultTilt),
		ui.NewThemedEffect(doc, "particles", theme, particles.ForTheme),
	)
	return ui.NewSession(ui.Options{
		Page:          doc,
		Store:         s.store.Prefs(visitorID),
		Catalog:       catalog,
		Effects:       effects,
		LoadingWindow: s.cfg.LoadingWindow,
		DefaultTheme:  theme,
		Owner:         catalog.Profile.ShortName,
		OnChange:      onChange,
	})
}

// handleLive runs one page's presentation session over a websocket. The
// browser streams events; every event is answered with the new snapshot,
// the document state and any queued browser commands.
func (s *Server) handleLive(c *gin.Context) {
	theme := s.theme(c)
	visitorID := visitor(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	title := s.content.Catalog().Profile.ShortName + " | Portfolio"
	doc := ui.NewDocument(title, c.DefaultQuery("url", "/"))
	lc := &liveConn{conn: conn, doc: doc}

	session := s.newPageSession(doc, visitorID, theme, func(snap ui.Snapshot) { lc.send(snap, "") })
	ctx := context.WithoutCancel(c.Request.Context())
	if err := session.Mount(ctx); err != nil {
		log.Printf("live: mount: %v", err)
		return
	}
	defer session.Unmount()
	lc.send(session.Snapshot(), "")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: websocket read: %v", err)
			}
			return
		}

		var ev ui.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			lc.send(session.Snapshot(), "invalid message format")
			continue
		}

		snap, err := session.Apply(ctx, ev)
		if errors.Is(err, ui.ErrClosed) {
			return
		}
		errMsg := ""
		if err != nil {
			log.Printf("live: %s: %v", ev.Type, err)
			errMsg = err.Error()
		}
		lc.send(snap, errMsg)
	}
}
