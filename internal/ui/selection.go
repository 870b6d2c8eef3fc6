package ui

import "essentials/internal/content"

// Selection is either Unselected (the zero value) or Selected(topic).
type Selection struct {
	topic content.TopicID
	ok    bool
}

// Unselected returns the initial, empty selection.
func Unselected() Selection {
	return Selection{}
}

// Selected returns a selection holding topic.
func Selected(topic content.TopicID) Selection {
	return Selection{topic: topic, ok: true}
}

// Topic returns the selected topic and true, or false when nothing is selected.
func (s Selection) Topic() (content.TopicID, bool) {
	return s.topic, s.ok
}

// Is reports whether topic is the selected one. Always false when unselected.
func (s Selection) Is(topic content.TopicID) bool {
	return s.ok && s.topic == topic
}

func (s Selection) String() string {
	if !s.ok {
		return "Unselected"
	}
	return "Selected(" + s.topic.String() + ")"
}
