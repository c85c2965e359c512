package entity

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is one turn of an assistant conversation. Conversations are
// stateless on the server; the client replays the full history on each call.
type ChatMessage struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required"`
}
