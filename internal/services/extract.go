package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/goal-achiever-backend/internal/types"
)

// The model is asked for bare JSON but routinely wraps it in a markdown code
// fence anyway. StripCodeFence removes exactly one outer fence with a fixed
// precedence: a leading fence with an explicit language tag, else a bare
// leading fence, else nothing. A missing closing fence is tolerated; fences
// that appear inside the payload after the opener is removed are left alone.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := s[3:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		tag := strings.TrimSpace(rest[:idx])
		// A non-tag on the opener line means the backticks were payload.
		if !isFenceTag(tag) {
			return s
		}
		rest = rest[idx+1:]
	} else {
		// Opener with no newline at all: "```" or "```json" and nothing else.
		if isFenceTag(strings.TrimSpace(rest)) {
			return ""
		}
		return s
	}
	rest = strings.TrimSpace(rest)
	if strings.HasSuffix(rest, "```") {
		rest = strings.TrimSpace(rest[:len(rest)-3])
	}
	return rest
}

// isFenceTag accepts an empty tag (bare fence) or a short identifier such as
// "json". Anything else is payload, not a fence marker.
func isFenceTag(tag string) bool {
	if len(tag) > 20 {
		return false
	}
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return true
}

// ParseTopicList extracts a JSON array of topic strings from raw model
// output. ok is false when the payload is not a non-empty list.
func ParseTopicList(raw string) ([]string, bool) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return nil, false
	}
	var items []interface{}
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, false
	}
	if len(items) == 0 {
		return nil, false
	}
	topics := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			topics = append(topics, v)
		default:
			topics = append(topics, strings.TrimSpace(fmt.Sprint(v)))
		}
	}
	return topics, true
}

// ParseDayContent extracts the daily content object from raw model output.
// Missing fields get per-field defaults; an unparseable payload yields the
// full fallback template. ok reports whether the payload parsed at all.
func ParseDayContent(raw, topic string) (*types.DayContent, bool) {
	cleaned := StripCodeFence(raw)
	var data map[string]interface{}
	if cleaned == "" {
		return FallbackDayContent(topic), false
	}
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return FallbackDayContent(topic), false
	}
	content := &types.DayContent{
		Overview: stringField(data, "overview", fmt.Sprintf("Focus on: %s", topic)),
		Tasks:    stringSliceField(data, "tasks"),
		Details:  stringField(data, "details", "Follow the plan."),
		Tips:     stringField(data, "tips", ""),
	}
	return content, true
}

// FallbackDayContent is the deterministic template used when generation or
// parsing failed for a day.
func FallbackDayContent(topic string) *types.DayContent {
	return &types.DayContent{
		Overview: fmt.Sprintf("Focus on: %s", topic),
		Tasks:    []string{fmt.Sprintf("Work on %s", topic)},
		Details:  "Content generation failed, displaying default template.",
		Tips:     "Stay consistent.",
	}
}

func stringField(data map[string]interface{}, key, defaultVal string) string {
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return defaultVal
}

func stringSliceField(data map[string]interface{}, key string) []string {
	out := []string{}
	items, ok := data[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
