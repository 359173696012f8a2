// Package transcript estimates context-window usage from a Claude Code
// JSONL session transcript.
package transcript

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"
)

// charsPerToken is the coarse length-based token heuristic used when an
// entry carries no explicit token counts.
const charsPerToken = 4

// Usage is the estimated context-window consumption for one session.
// Available is false when no estimate could be made; callers then omit
// the context segment entirely.
type Usage struct {
	Available     bool
	TokenEstimate int64
	Percentage    int // truncated, not clamped: overruns past 100 show as-is
}

// TokenCache is the subset of the estimate store the estimator needs.
type TokenCache interface {
	Get(path string, mtimeNs, sizeBytes int64) (int64, bool)
	Put(path string, mtimeNs, sizeBytes, tokens int64) error
}

// WindowFor returns the context window in tokens for a model display name.
// Opus-family models (case-insensitive substring match) get the larger window.
func WindowFor(modelName string, opusWindow, defaultWindow int64) int64 {
	if strings.Contains(strings.ToLower(modelName), "opus") {
		return opusWindow
	}
	return defaultWindow
}

// Estimate reads the transcript at path and estimates usage against the
// window for modelName. A missing, unreadable, or unparsable transcript
// yields Usage{Available: false} rather than an error.
func Estimate(path, modelName string, opusWindow, defaultWindow int64) Usage {
	tokens, ok := CountTokens(path)
	if !ok {
		return Usage{}
	}
	return FromTokens(tokens, WindowFor(modelName, opusWindow, defaultWindow))
}

// EstimateCached is Estimate with a cache in front of the transcript parse,
// keyed by the file's mtime and size. A nil cache or any cache failure
// degrades to a direct parse.
func EstimateCached(cache TokenCache, path, modelName string, opusWindow, defaultWindow int64) Usage {
	if cache == nil {
		return Estimate(path, modelName, opusWindow, defaultWindow)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Usage{}
	}
	mtimeNs := info.ModTime().UnixNano()
	size := info.Size()

	window := WindowFor(modelName, opusWindow, defaultWindow)
	if tokens, ok := cache.Get(path, mtimeNs, size); ok {
		return FromTokens(tokens, window)
	}

	tokens, ok := CountTokens(path)
	if !ok {
		return Usage{}
	}
	_ = cache.Put(path, mtimeNs, size, tokens) // best effort

	return FromTokens(tokens, window)
}

// FromTokens converts a token estimate into a Usage against a window.
func FromTokens(tokens, window int64) Usage {
	if window <= 0 {
		return Usage{}
	}
	return Usage{
		Available:     true,
		TokenEstimate: tokens,
		Percentage:    int(tokens * 100 / window),
	}
}

// CountTokens parses the JSONL transcript and sums the token estimate over
// user and assistant entries. ok is false when the file is unreadable or
// contains no parsable entries.
func CountTokens(path string) (int64, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer func() { _ = f.Close() }()

	var total int64
	parsed := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 256*1024), 2*1024*1024)

	for scanner.Scan() {
		tokens, ok := lineTokens(scanner.Bytes())
		if !ok {
			continue
		}
		parsed++
		total += tokens
	}

	if parsed == 0 {
		return 0, false
	}
	return total, true
}

// lineTokens estimates the token contribution of a single transcript line.
// User entries use the length heuristic; assistant entries prefer the
// explicit usage counts when present. Other entry types contribute nothing.
func lineTokens(line []byte) (int64, bool) {
	var entry rawLine
	if err := json.Unmarshal(line, &entry); err != nil {
		return 0, false
	}
	if entry.Message == nil {
		return 0, false
	}

	role := entry.Message.Role
	if role == "" {
		role = entry.Type
	}

	switch role {
	case "user":
		return contentLength(entry.Message.Content) / charsPerToken, true
	case "assistant":
		if u := entry.Message.Usage; u != nil && u.OutputTokens > 0 {
			return u.OutputTokens, true
		}
		return contentLength(entry.Message.Content) / charsPerToken, true
	}
	return 0, false
}

// contentLength returns the visible content length of a message: either a
// plain string or an array of text blocks.
func contentLength(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return int64(len(s))
	}

	var blocks []contentBlock
	if err := json.Unmarshal(raw, &blocks); err == nil {
		var n int64
		for _, b := range blocks {
			n += int64(len(b.Text))
		}
		return n
	}

	return int64(len(raw))
}
