package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized line with module/action/request_id.
// Keep messages summarized; never pass tokens or request bodies.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogFailure records an error that is handled without reaching the client,
// such as a read endpoint falling back to an empty payload.
func LogFailure(requestID, module, action string, err error) {
	if err == nil {
		return
	}
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s error=%q", strings.ToUpper(module), action, req, err.Error())
}
