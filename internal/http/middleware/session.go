package middleware

import (
	"github.com/gin-gonic/gin"

	"shopzone.com/app/internal/http/sessioncookie"
	"shopzone.com/app/internal/modules/session"
)

const CtxKeySession = "session"

// SessionCfg holds configuration for the session middleware.
type SessionCfg struct {
	Store *session.Store
	Codec *sessioncookie.Codec
}

// SessionMiddleware attaches the visitor's in-memory session to the request
// context, creating one (and setting the signed cookie) when the request
// carries no valid session id. State lives only in the store and dies with
// the process.
func SessionMiddleware(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := cfg.Codec.GetSessionID(c)

		sess, created := cfg.Store.GetOrCreate(id)
		if created {
			cfg.Codec.Set(c, sess.ID)
		}

		c.Set(CtxKeySession, sess)
		c.Next()
	}
}

// CurrentSession returns the session attached by SessionMiddleware.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(CtxKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
