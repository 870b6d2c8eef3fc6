package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTopic is returned by ParseTopic for tokens outside the closed topic set.
var ErrUnknownTopic = errors.New("unknown topic")

// TopicID identifies one selectable example category.
// The set is closed: only the constants below are valid.
type TopicID int

const (
	TopicComponents TopicID = iota
	TopicJSX
	TopicProps
	TopicState

	topicCount = int(TopicState) + 1
)

// Topics returns the closed topic set in button order.
func Topics() []TopicID {
	return []TopicID{TopicComponents, TopicJSX, TopicProps, TopicState}
}

// String returns the identifier token ("components", "jsx", "props", "state").
func (t TopicID) String() string {
	switch t {
	case TopicComponents:
		return "components"
	case TopicJSX:
		return "jsx"
	case TopicProps:
		return "props"
	case TopicState:
		return "state"
	default:
		return fmt.Sprintf("TopicID(%d)", int(t))
	}
}

// Label returns the text shown on the topic's tab button.
func (t TopicID) Label() string {
	switch t {
	case TopicComponents:
		return "Components"
	case TopicJSX:
		return "JSX"
	case TopicProps:
		return "Props"
	case TopicState:
		return "State"
	default:
		return t.String()
	}
}

// Valid reports whether t is one of the closed set of topics.
func (t TopicID) Valid() bool {
	return t >= 0 && int(t) < topicCount
}

// ParseTopic maps an identifier token back to its TopicID. Matching is case-insensitive.
func ParseTopic(s string) (TopicID, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Topics() {
		if t.String() == token {
			return t, nil
		}
	}
	return 0, fmt.Errorf("parse topic %q: %w", s, ErrUnknownTopic)
}
