package systems

import (
	"fmt"
	"log"
	"sync"
)

// MessageLog stores the viewer's status messages
type MessageLog struct {
	mu          sync.Mutex
	Messages    []ColoredMessage
	MaxMessages int
	// Echo also writes each message to the standard logger
	Echo bool
}

var (
	globalMessageLog     *MessageLog
	globalMessageLogOnce sync.Once
)

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	globalMessageLogOnce.Do(func() {
		globalMessageLog = NewMessageLog()
	})
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100,
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// Addf formats and adds a message of the given type
func (ml *MessageLog) Addf(msgType MessageType, format string, args ...any) {
	ml.AddTyped(fmt.Sprintf(format, args...), msgType)
}

// AddTyped adds a message of the given type
func (ml *MessageLog) AddTyped(message string, msgType MessageType) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}

	if ml.Echo {
		log.Printf("[VIEW] [INFO] %s", message)
	}
}

// Len returns the number of stored messages
func (ml *MessageLog) Len() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return len(ml.Messages)
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}
	if n < 0 {
		n = 0
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}
	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.Messages = []ColoredMessage{}
}
