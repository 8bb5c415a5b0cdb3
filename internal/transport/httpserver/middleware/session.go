package middleware

import (
	"context"
	"net/http"
	"time"

	"protein-tracker/internal/config"
	sessiondomain "protein-tracker/internal/domain/session"
	"protein-tracker/pkg/logger"
)

const SessionHeader = "X-Session-ID"

type contextKey int

const sessionIDKey contextKey = iota

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (sessiondomain.Session, error)
	TTL() time.Duration
}

type Sessions struct {
	resolver SessionResolver
	cookie   string
	secure   bool
	log      logger.Logger
}

func NewSessions(cfg config.SessionConfig, resolver SessionResolver, log logger.Logger) *Sessions {
	cookie := cfg.CookieName
	if cookie == "" {
		cookie = "sessionId"
	}
	return &Sessions{
		resolver: resolver,
		cookie:   cookie,
		secure:   cfg.SecureCookie,
		log:      log,
	}
}

func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(SessionHeader)
		if cookie, err := r.Cookie(s.cookie); err == nil && cookie.Value != "" {
			token = cookie.Value
		}

		log := logger.FromContext(r.Context(), s.log)
		session, err := s.resolver.Resolve(r.Context(), token)
		if err != nil {
			log.InternalError("session: resolve failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		if session.Created {
			log.Debug("session: created", "session_id", session.ID)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     s.cookie,
			Value:    session.ID,
			Path:     "/",
			MaxAge:   int(s.resolver.TTL().Seconds()),
			HttpOnly: true,
			Secure:   s.secure,
			SameSite: http.SameSiteLaxMode,
		})
		w.Header().Set(SessionHeader, session.ID)

		ctx := context.WithValue(r.Context(), sessionIDKey, session.ID)
		ctx = logger.IntoContext(ctx, log.With("session_id", session.ID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
