package audit

import "testing"

func TestParseRoute_Overrides(t *testing.T) {
	testCases := []struct {
		method, path string
		want         ActionResource
	}{
		{"POST", "/", ActionResource{Action: "run_command", Resource: "command"}},
		{"POST", "/login", ActionResource{Action: "login", Resource: "session"}},
		{"POST", "/logout", ActionResource{Action: "logout", Resource: "session"}},
	}
	for _, tc := range testCases {
		got := ParseRoute(tc.method, tc.path)
		if got != tc.want {
			t.Errorf("ParseRoute(%s %s) = %+v, want %+v", tc.method, tc.path, got, tc.want)
		}
	}
}

func TestParseRoute_Generic(t *testing.T) {
	testCases := []struct {
		method, path string
		want         ActionResource
	}{
		{"POST", "/tokens", ActionResource{Action: "create", Resource: "tokens"}},
		{"DELETE", "/tokens/abc", ActionResource{Action: "delete", Resource: "tokens"}},
		{"PUT", "/settings/display", ActionResource{Action: "update", Resource: "settings"}},
		{"PATCH", "/settings", ActionResource{Action: "update", Resource: "settings"}},
		{"GET", "/history", ActionResource{Action: "get", Resource: "history"}},
		{"POST", "/tokens?force=1", ActionResource{Action: "create", Resource: "tokens"}},
		{"PUT", "/", ActionResource{Action: "update", Resource: "root"}},
		{"POST", "", ActionResource{Action: "run_command", Resource: "command"}},
	}
	for _, tc := range testCases {
		got := ParseRoute(tc.method, tc.path)
		if got != tc.want {
			t.Errorf("ParseRoute(%s %q) = %+v, want %+v", tc.method, tc.path, got, tc.want)
		}
	}
}
