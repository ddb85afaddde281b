// Package util provides common utilities including logging helpers,
// XDG directory resolution and small numeric helpers.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogEvent records a timer lifecycle event.
func LogEvent(event string, kv ...any) {
	if len(kv) == 0 {
		log.Print(event)
		return
	}
	log.Printf("%s %v", event, kv)
}
