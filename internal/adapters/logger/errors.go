package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches errors that can report their own message without the chain,
// such as *zerr.Error.
type messager interface {
	Message() string
}

type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	pending := map[string]any{}

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: nonEmpty(pending)})
			break
		}

		if mc, ok := current.(metadataCarrier); ok {
			maps.Copy(pending, mc.Metadata())
		}

		// zerr.With on a plain error adds a link with no message of its own.
		if m.Message() != "" {
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: nonEmpty(pending)})
			pending = map[string]any{}
		}

		current = errors.Unwrap(current)
	}

	return entries
}

func nonEmpty(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}

func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		first, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			first, indent = "    → ", "      "
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
