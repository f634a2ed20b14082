package requestcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// ClientIPKey is the context key for the caller's IP
	ClientIPKey ContextKey = "client_ip"
	// RequestPathKey is the context key for the request path
	RequestPathKey ContextKey = "request_path"
	// ServiceNameKey is the context key for service name
	ServiceNameKey ContextKey = "service_name"
)

// RequestContext holds request-specific information. The audit event log
// records these as the originating server identity of each entry.
type RequestContext struct {
	RequestID   string
	ClientIP    string
	RequestPath string
	ServiceName string
	StartTime   time.Time
}

// NewRequestContext creates a new request context for non-HTTP callers
// such as the background sweep
func NewRequestContext(serviceName string) *RequestContext {
	return &RequestContext{
		RequestID:   uuid.New().String(),
		ServiceName: serviceName,
		StartTime:   time.Now(),
	}
}

// WithRequestContext adds request context to the given context
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, reqCtx.RequestID)
	ctx = context.WithValue(ctx, ClientIPKey, reqCtx.ClientIP)
	ctx = context.WithValue(ctx, RequestPathKey, reqCtx.RequestPath)
	ctx = context.WithValue(ctx, ServiceNameKey, reqCtx.ServiceName)
	return ctx
}

// FromEchoContext extracts request context from Echo context
func FromEchoContext(c echo.Context) *RequestContext {
	reqCtx := &RequestContext{
		ClientIP:    c.RealIP(),
		RequestPath: c.Request().URL.Path,
		StartTime:   time.Now(),
	}

	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		reqCtx.RequestID = requestID
	} else {
		reqCtx.RequestID = uuid.New().String()
	}

	return reqCtx
}

// Middleware stuffs the request context into the request's context.Context
// so lower layers can recover it
func Middleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := FromEchoContext(c)
			reqCtx.ServiceName = serviceName

			ctx := WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// GetClientIP extracts the caller's IP from context
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ClientIPKey).(string); ok {
		return ip
	}
	return ""
}

// GetRequestPath extracts the request path from context
func GetRequestPath(ctx context.Context) string {
	if path, ok := ctx.Value(RequestPathKey).(string); ok {
		return path
	}
	return ""
}
