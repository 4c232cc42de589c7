package powers

import "strings"

// MessageStore maps localization IDs to display strings.
type MessageStore struct {
	messages map[string]string
}

func NewMessageStore() *MessageStore {
	return &MessageStore{messages: make(map[string]string)}
}

// Add records text for id. IDs are matched case-insensitively.
func (m *MessageStore) Add(id, text string) {
	if m.messages == nil {
		m.messages = make(map[string]string)
	}
	m.messages[strings.ToLower(strings.TrimSpace(id))] = text
}

func (m *MessageStore) Len() int {
	if m == nil {
		return 0
	}
	return len(m.messages)
}

// Get returns the message for id.
func (m *MessageStore) Get(id string) (string, bool) {
	if m == nil || id == "" {
		return "", false
	}
	text, ok := m.messages[strings.ToLower(strings.TrimSpace(id))]
	return text, ok
}

// Localize returns the message for id, or id itself when it names no message.
func (m *MessageStore) Localize(id string) string {
	if text, ok := m.Get(id); ok {
		return text
	}
	return id
}
