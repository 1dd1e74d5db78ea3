package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"invoice-manifest/internal/domain"
)

// JSONChatHistoryRepository reads a prior conversation saved as a JSON array of messages.
type JSONChatHistoryRepository struct{}

// NewJSONChatHistoryRepository creates a new repository instance.
func NewJSONChatHistoryRepository() *JSONChatHistoryRepository {
	return &JSONChatHistoryRepository{}
}

// GetChatHistory reads the messages at path. Every message needs a known role.
func (r *JSONChatHistoryRepository) GetChatHistory(ctx context.Context, path string) ([]domain.ChatMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.IOError(fmt.Sprintf("failed to open chat history %s", path), err)
	}

	var messages []domain.ChatMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, domain.ParseError(fmt.Sprintf("could not parse chat history %s", path), err)
	}
	for i, m := range messages {
		switch m.Role {
		case domain.RoleSystem, domain.RoleUser, domain.RoleAssistant:
		default:
			return nil, domain.ParseError(fmt.Sprintf("chat history %s: message %d has unknown role %q", path, i, m.Role), nil)
		}
	}
	return messages, nil
}
