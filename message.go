package reagent

import (
	"fmt"
	"strings"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in an agent's conversation history. The history is an
// ordered, append-only sequence owned exclusively by a single Agent; it always
// starts with exactly one system message and is never reordered.
type Message struct {
	Role    Role
	Content string
}

// renderTranscript renders messages as markdown-ish blocks for diagnostics,
// one block per message:
//
//	**user**:
//	What is 2+2?
func renderTranscript(messages []Message) string {
	blocks := make([]string, 0, len(messages))
	for _, msg := range messages {
		blocks = append(blocks, fmt.Sprintf("**%s**:\n%s\n", msg.Role, msg.Content))
	}
	return strings.Join(blocks, "\n")
}
