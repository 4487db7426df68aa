package runner

import (
	"fmt"
	"strings"
)

// SplitArgs splits a free-form argument string into argv the way a shell
// would for simple cases: whitespace separates, double quotes group, and a
// backslash escapes the next rune. An unterminated quote is an error.
func SplitArgs(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var args []string
	var cur strings.Builder
	inQuotes := false
	escaped := false

	flush := func() {
		if cur.Len() > 0 {
			args = append(args, cur.String())
			cur.Reset()
		}
	}

	for _, r := range s {
		if escaped {
			cur.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			inQuotes = !inQuotes
		case ' ', '\t', '\n', '\r':
			if inQuotes {
				cur.WriteRune(r)
			} else {
				flush()
			}
		default:
			cur.WriteRune(r)
		}
	}

	if escaped {
		// dangling backslash; keep it.
		cur.WriteRune('\\')
	}

	if inQuotes {
		return nil, fmt.Errorf("unterminated quote")
	}

	flush()
	return args, nil
}

// AppendDefaults appends each default arg not already present in args.
// The defaults come from DEFAULT_COMMAND_ARGS and apply to every run.
func AppendDefaults(args, defaults []string) []string {
	for _, d := range defaults {
		found := false
		for _, a := range args {
			if a == d {
				found = true
				break
			}
		}
		if !found {
			args = append(args, d)
		}
	}
	return args
}
