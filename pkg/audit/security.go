// Package audit provides security audit logging for SIEM consumption.
// It logs security-relevant events in structured JSON format for easy parsing
// and integration with security information and event management systems.
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SecurityEventType categorizes security-relevant events for filtering and alerting.
type SecurityEventType string

const (
	// EventAuthFailure is logged when a password check fails.
	EventAuthFailure SecurityEventType = "auth_failure"
	// EventSessionIssued is logged when a session cookie is minted.
	EventSessionIssued SecurityEventType = "session_issued"
	// EventSessionRejected is logged when a request presents a missing or
	// invalid session cookie on a gated endpoint.
	EventSessionRejected SecurityEventType = "session_rejected"
)

// SecurityEvent represents an auditable security event with all relevant
// context for SIEM ingestion and analysis.
type SecurityEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	EventID   uuid.UUID         `json:"event_id"`
	EventType SecurityEventType `json:"event_type"`
	ClientIP  string            `json:"client_ip,omitempty"`
	Details   any               `json:"details,omitempty"`
	Severity  string            `json:"severity"` // info, warning, critical
}

// SessionRejectionDetails records which request was turned away and why.
type SessionRejectionDetails struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Reason string `json:"reason"` // "missing_cookie" or "invalid_session"
}

// SecurityAuditor logs security events for SIEM consumption.
type SecurityAuditor struct {
	logger *zap.Logger
}

// NewSecurityAuditor creates a new security auditor with a dedicated logger
// namespace, so SIEM pipelines can filter on the "security_audit" logger name.
func NewSecurityAuditor(logger *zap.Logger) *SecurityAuditor {
	return &SecurityAuditor{logger: logger.Named("security_audit")}
}

// LogAuthFailure records a failed password check. Repeated failures from one
// address are the signal a brute-force alert keys on.
func (a *SecurityAuditor) LogAuthFailure(clientIP string) {
	event := SecurityEvent{
		Timestamp: time.Now().UTC(),
		EventID:   uuid.New(),
		EventType: EventAuthFailure,
		ClientIP:  clientIP,
		Severity:  "warning",
	}

	// Marshaling known types never fails.
	eventJSON, _ := json.Marshal(event)

	a.logger.Warn("Authentication failed",
		zap.String("event_json", string(eventJSON)),
		zap.String("client_ip", clientIP),
		zap.String("severity", "warning"),
	)
}

// LogSessionIssued records a successful authentication and the resulting
// session grant. The session identifier itself is deliberately not logged.
func (a *SecurityAuditor) LogSessionIssued(clientIP string) {
	event := SecurityEvent{
		Timestamp: time.Now().UTC(),
		EventID:   uuid.New(),
		EventType: EventSessionIssued,
		ClientIP:  clientIP,
		Severity:  "info",
	}

	eventJSON, _ := json.Marshal(event)

	a.logger.Info("Session issued",
		zap.String("event_json", string(eventJSON)),
		zap.String("client_ip", clientIP),
		zap.String("severity", "info"),
	)
}

// LogSessionRejected records a gated request turned away for a missing or
// invalid session cookie.
func (a *SecurityAuditor) LogSessionRejected(clientIP string, details SessionRejectionDetails) {
	event := SecurityEvent{
		Timestamp: time.Now().UTC(),
		EventID:   uuid.New(),
		EventType: EventSessionRejected,
		ClientIP:  clientIP,
		Details:   details,
		Severity:  "warning",
	}

	eventJSON, _ := json.Marshal(event)

	a.logger.Warn("Session rejected",
		zap.String("event_json", string(eventJSON)),
		zap.String("method", details.Method),
		zap.String("path", details.Path),
		zap.String("reason", details.Reason),
		zap.String("client_ip", clientIP),
		zap.String("severity", "warning"),
	)
}
