package audit

import (
	"net/http"
	"strings"
)

// ActionResource holds action and resource derived from an HTTP route.
type ActionResource struct {
	Action   string
	Resource string
}

// Route overrides: the console's own mutating routes audit under stable names
// regardless of the generic verb mapping.
var routeOverrides = map[string]ActionResource{
	"POST /":       {Action: ActionRunCommand, Resource: "command"},
	"POST /login":  {Action: "login", Resource: "session"},
	"POST /logout": {Action: "logout", Resource: "session"},
}

// ParseRoute returns action and resource for an HTTP method and path
// (e.g. DELETE /tokens/abc -> delete/tokens). Action is a verb derived from
// the method; resource is the first path segment, or "root" for /.
func ParseRoute(method, path string) ActionResource {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = "/"
	}
	if ar, ok := routeOverrides[method+" "+path]; ok {
		return ar
	}
	resource := "root"
	trimmed := strings.Trim(path, "/")
	if trimmed != "" {
		if i := strings.IndexByte(trimmed, '/'); i >= 0 {
			trimmed = trimmed[:i]
		}
		resource = trimmed
	}
	return ActionResource{Action: methodToAction(method), Resource: resource}
}

func methodToAction(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return strings.ToLower(method)
	}
}
