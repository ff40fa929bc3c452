package posts

import (
	"fmt"
	"strings"
)

// ValidTopics is the fixed topic vocabulary, in canonical lower case.
// Topic input is matched case-insensitively against it.
var ValidTopics = []string{"politics", "health", "sport", "tech"}

// NormalizeTopic lower-cases and trims a topic and checks it against the
// vocabulary. Unrecognized topics are a validation error, never a silent miss.
func NormalizeTopic(topic string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(topic))
	for _, valid := range ValidTopics {
		if normalized == valid {
			return normalized, nil
		}
	}
	return "", NewValidationError("topic",
		fmt.Sprintf("unknown topic %q (valid: %s)", topic, strings.Join(ValidTopics, ", ")))
}

// normalizeTopics validates a post's topic set: non-empty, every member in
// the vocabulary, no duplicates after normalization.
func normalizeTopics(topics []string) ([]string, error) {
	if len(topics) == 0 {
		return nil, NewValidationError("topics", "at least one topic is required")
	}

	seen := make(map[string]bool, len(topics))
	normalized := make([]string, 0, len(topics))
	for _, topic := range topics {
		canonical, err := NormalizeTopic(topic)
		if err != nil {
			return nil, err
		}
		if seen[canonical] {
			return nil, NewValidationError("topics",
				fmt.Sprintf("duplicate topic %q", canonical))
		}
		seen[canonical] = true
		normalized = append(normalized, canonical)
	}
	return normalized, nil
}
