package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie = "visitor_id"
	themeCookie   = "theme"
	visitorKey    = "visitor"

	yearSeconds = 365 * 24 * 3600
)

func randomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(b)
}

// visitorID gives every browser a stable anonymous id, used to key its
// theme preference.
func (s *Server) visitorID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookie, id, yearSeconds, "/", "", false, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func visitor(c *gin.Context) string {
	return c.GetString(visitorKey)
}

var untrackedPrefixes = []string{
	"/static/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/healthz",
	"/ws",
	"/particles.json",
}

// trackVisits records page views with a hashed client address. Do Not
// Track is honored.
func (s *Server) trackVisits() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		s.bg.Add(1)
		go func() {
			defer s.bg.Done()
			if err := s.store.RecordVisit(context.Background(), ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}
