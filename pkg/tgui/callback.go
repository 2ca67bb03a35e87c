package tgui

import (
	"strings"
)

// Data formats inline callback data as "ns:action:payload".
// Payload is kept as-is (no escaping).
func Data(ns, action, payload string) string {
	ns = strings.TrimSpace(ns)
	action = strings.TrimSpace(action)
	if payload == "" {
		return ns + ":" + action
	}
	return ns + ":" + action + ":" + payload
}

// ParseData splits callback data produced by Data. The payload may itself
// contain colons; only the first two are separators.
func ParseData(data string) (ns, action, payload string) {
	parts := strings.SplitN(strings.TrimSpace(data), ":", 3)
	switch len(parts) {
	case 3:
		return parts[0], parts[1], parts[2]
	case 2:
		return parts[0], parts[1], ""
	default:
		return parts[0], "", ""
	}
}
