package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrorEntry is one level of an error chain as shown to the user.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// zerrError matches *zerr.Error without depending on its concrete type.
type zerrError interface {
	Message() string
	Metadata() map[string]any
	Unwrap() error
}

type multiError interface {
	Unwrap() []error
}

// collectErrorEntries flattens err into display entries, outermost first.
// Joined errors contribute their children in order. Metadata attached to a
// message-less wrapper is carried onto the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			switch e := current.(type) {
			case zerrError:
				md := e.Metadata()
				if e.Message() == "" {
					pending = mergeMetadata(pending, md)
					current = e.Unwrap()
					continue
				}
				entries = append(entries, ErrorEntry{
					Message:  e.Message(),
					Metadata: mergeMetadata(pending, md),
				})
				pending = nil
				current = e.Unwrap()
			case multiError:
				for _, child := range e.Unwrap() {
					walk(child)
				}
				return
			default:
				entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
				pending = nil
				return
			}
		}
	}
	walk(err)

	return entries
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// formatErrorEntries renders entries as "Error: ..." followed by a "Caused by" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, formatMetadata(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, formatMetadata(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(md map[string]any, indent string) []string {
	lines := make([]string, 0, len(md))
	for _, key := range slices.Sorted(maps.Keys(md)) {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, md[key]))
	}
	return lines
}
