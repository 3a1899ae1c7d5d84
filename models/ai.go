package models

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant tool"`
	Content string `json:"content" validate:"max=65536"`
}

// CompletionRequest is the body of POST /api/completion.
type CompletionRequest struct {
	Prompt string `json:"prompt" validate:"required,max=65536"`
}

// ToolsRequest is the body of POST /api/tools.
type ToolsRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// SuggestionResponse is returned by GET /api/suggestion.
type SuggestionResponse struct {
	Text string `json:"text"`
}

// SpeechRequest is the body of POST /api/speech.
type SpeechRequest struct {
	ID   string `json:"id" validate:"required,max=128"`
	Text string `json:"text" validate:"required"`
}

// SpeechResponse lists the public URLs of the synthesized segments in
// reading order.
type SpeechResponse struct {
	URLs []string `json:"urls"`
}
