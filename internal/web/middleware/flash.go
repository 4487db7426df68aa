package middleware

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// FlashCookie is the one-shot cookie carrying messages across a redirect.
const FlashCookie = "console_flash"

// Flash levels, styled by the layout template.
const (
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "error"
)

// Flash is one message queued for the next rendered page.
type Flash struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// FlashStore queues and drains flash messages via a cookie, so messages
// survive the redirect after a form post.
type FlashStore struct {
	// Secure marks the flash cookie Secure.
	Secure bool
}

// Add queues a message for the next page render.
func (s FlashStore) Add(c *gin.Context, level, text string) {
	flashes := append(s.peek(c), Flash{Level: level, Text: text})
	raw, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	c.SetCookie(FlashCookie, base64.RawURLEncoding.EncodeToString(raw), 300, "/", "", s.Secure, true)
}

// Pop returns all queued messages and clears the cookie.
func (s FlashStore) Pop(c *gin.Context) []Flash {
	flashes := s.peek(c)
	if len(flashes) > 0 {
		c.SetCookie(FlashCookie, "", -1, "/", "", s.Secure, true)
	}
	return flashes
}

func (s FlashStore) peek(c *gin.Context) []Flash {
	v, err := c.Cookie(FlashCookie)
	if err != nil || v == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
