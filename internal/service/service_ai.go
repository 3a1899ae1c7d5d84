package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/summarium/internal/ai"
	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/store"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/MKhiriev/summarium/models"
)

const (
	// MaxSpeechSegment is the provider's input limit for one speech call.
	MaxSpeechSegment = 4096

	maxToolRounds = 4

	completionPrompt = "You are a writing assistant inside a notes app. " +
		"Continue or answer the user's text. Reply with plain text only."
	suggestionPrompt = "You autocomplete text in a notes editor. " +
		"Return only the few words that most likely continue the user's sentence, without repeating it."
	toolsPrompt = "You are a task assistant. Use the tools to create or look up the user's tasks " +
		"and then answer briefly in plain text."
)

var speechIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var (
	createTaskTool = ai.NewFunctionTool("createTask", "Create a task for the user.", json.RawMessage(`{
		"type": "object",
		"properties": {
			"title": {"type": "string"},
			"description": {"type": "string"},
			"status": {"type": "string", "enum": ["backlog", "todo", "in-progress", "complete", "wont-do"]},
			"priority": {"type": "string", "enum": ["no-priority", "urgent", "high", "medium", "low"]},
			"due": {"type": "string", "description": "natural language due date, e.g. next friday"}
		},
		"required": ["title"]
	}`))
	listTasksTool = ai.NewFunctionTool("listTasks", "List the user's tasks, optionally filtered.", json.RawMessage(`{
		"type": "object",
		"properties": {
			"status": {"type": "string", "enum": ["backlog", "todo", "in-progress", "complete", "wont-do"]},
			"priority": {"type": "string", "enum": ["no-priority", "urgent", "high", "medium", "low"]}
		}
	}`))
)

type createTaskArgs struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	Due         string              `json:"due"`
}

type listTasksArgs struct {
	Status   models.TaskStatus   `json:"status"`
	Priority models.TaskPriority `json:"priority"`
}

// taskSummary is what the model sees of a task.
type taskSummary struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Status   models.TaskStatus   `json:"status"`
	Priority models.TaskPriority `json:"priority"`
	DueDate  *time.Time          `json:"due_date,omitempty"`
}

type aiService struct {
	provider  ai.Provider
	tasks     TaskService
	audio     store.AudioStore
	ids       *utils.UUIDGenerator
	cfg       config.AI
	wordDelay time.Duration
	logger    *logger.Logger
}

func NewAIService(provider ai.Provider, tasks TaskService, audio store.AudioStore, cfg config.AI, logger *logger.Logger) AIService {
	return &aiService{
		provider:  provider,
		tasks:     tasks,
		audio:     audio,
		ids:       utils.NewUUIDGenerator(),
		cfg:       cfg,
		wordDelay: cfg.WordDelay,
		logger:    logger,
	}
}

func (s *aiService) Completion(ctx context.Context, prompt string, onDelta func(string) error) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrInvalidDataProvided
	}
	return s.provider.ChatStream(ctx, s.cfg.ChatModel, []ai.Message{
		{Role: ai.RoleSystem, Content: completionPrompt},
		{Role: ai.RoleUser, Content: prompt},
	}, onDelta)
}

func (s *aiService) Suggestion(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", nil
	}
	text, err := s.provider.Chat(ctx, s.cfg.SuggestionModel, []ai.Message{
		{Role: ai.RoleSystem, Content: suggestionPrompt},
		{Role: ai.RoleUser, Content: query},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Tools lets the model call createTask and listTasks on behalf of userID
// until it answers without tool calls, then emits that answer. After
// maxToolRounds the final answer is requested without tools.
func (s *aiService) Tools(ctx context.Context, userID int64, messages []models.ChatMessage, onDelta func(string) error) error {
	log := logger.FromContext(ctx)

	conversation := make([]ai.Message, 0, len(messages)+4)
	conversation = append(conversation, ai.Message{Role: ai.RoleSystem, Content: toolsPrompt})
	for _, m := range messages {
		conversation = append(conversation, ai.Message{Role: m.Role, Content: m.Content})
	}
	tools := []ai.Tool{createTaskTool, listTasksTool}

	for round := 0; round < maxToolRounds; round++ {
		reply, err := s.provider.ChatWithTools(ctx, s.cfg.ChatModel, conversation, tools)
		if err != nil {
			return err
		}
		if len(reply.ToolCalls) == 0 {
			if reply.Content == "" {
				return nil
			}
			return onDelta(reply.Content)
		}

		conversation = append(conversation, reply)
		for _, call := range reply.ToolCalls {
			result, err := s.runTool(ctx, userID, call)
			if err != nil {
				log.Warn().Err(err).Str("func", "aiService.Tools").Str("tool", call.Function.Name).Msg("tool call failed")
				result = fmt.Sprintf(`{"error":%q}`, err.Error())
			}
			conversation = append(conversation, ai.Message{Role: ai.RoleTool, ToolCallID: call.ID, Content: result})
		}
	}

	return s.provider.ChatStream(ctx, s.cfg.ChatModel, conversation, onDelta)
}

func (s *aiService) runTool(ctx context.Context, userID int64, call ai.ToolCall) (string, error) {
	switch call.Function.Name {
	case createTaskTool.Function.Name:
		var args createTaskArgs
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		task, err := s.tasks.Save(ctx, userID, s.ids.Generate(), models.SaveTaskRequest{
			Title:       args.Title,
			Description: args.Description,
			Status:      args.Status,
			Priority:    args.Priority,
			Due:         args.Due,
		})
		if err != nil {
			return "", err
		}
		return encodeToolResult(summarize(task))

	case listTasksTool.Function.Name:
		var args listTasksArgs
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
			}
		}
		tasks, err := s.tasks.List(ctx, userID, models.TaskFilter{Status: args.Status, Priority: args.Priority})
		if err != nil {
			return "", err
		}
		summaries := make([]taskSummary, 0, len(tasks))
		for _, t := range tasks {
			summaries = append(summaries, summarize(t))
		}
		return encodeToolResult(summaries)
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownTool, call.Function.Name)
}

func summarize(t models.Task) taskSummary {
	return taskSummary{ID: t.ID, Title: t.DisplayTitle(), Status: t.Status, Priority: t.Priority, DueDate: t.DueDate}
}

func encodeToolResult(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Transcribe sends the audio to the provider and replays the transcript
// one word at a time, each followed by a space.
func (s *aiService) Transcribe(ctx context.Context, filename string, audio io.Reader, onWord func(string) error) error {
	text, err := s.provider.Transcribe(ctx, filename, audio)
	if err != nil {
		return err
	}

	var timer *time.Timer
	for i, word := range strings.Fields(text) {
		if i > 0 && s.wordDelay > 0 {
			if timer == nil {
				timer = time.NewTimer(s.wordDelay)
				defer timer.Stop()
			} else {
				timer.Reset(s.wordDelay)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := onWord(word + " "); err != nil {
			return err
		}
	}
	return nil
}

// Speech synthesizes every segment of req.Text and stores it as
// "<id>-<n>.mp3". URLs are returned in reading order.
func (s *aiService) Speech(ctx context.Context, req models.SpeechRequest) (models.SpeechResponse, error) {
	if !speechIDPattern.MatchString(req.ID) {
		return models.SpeechResponse{}, ErrInvalidSpeechID
	}
	segments := SplitSpeechText(req.Text, MaxSpeechSegment)
	if len(segments) == 0 {
		return models.SpeechResponse{}, ErrInvalidDataProvided
	}

	urls := make([]string, 0, len(segments))
	for n, segment := range segments {
		audio, err := s.provider.Speech(ctx, segment)
		if err != nil {
			return models.SpeechResponse{}, err
		}

		name := fmt.Sprintf("%s-%d.mp3", req.ID, n)
		url, err := s.audio.Put(ctx, name, bytes.NewReader(audio), int64(len(audio)), "audio/mpeg")
		if err != nil {
			return models.SpeechResponse{}, err
		}
		urls = append(urls, url)
	}

	return models.SpeechResponse{URLs: urls}, nil
}

// SplitSpeechText cuts text into segments of at most limit runes, breaking
// on whitespace. A single word longer than limit is cut mid-word.
func SplitSpeechText(text string, limit int) []string {
	var (
		segments []string
		current  strings.Builder
		size     int
	)
	flush := func() {
		if size > 0 {
			segments = append(segments, current.String())
			current.Reset()
			size = 0
		}
	}

	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > limit {
			flush()
			runes := []rune(word)
			segments = append(segments, string(runes[:limit]))
			word = string(runes[limit:])
		}

		wordSize := utf8.RuneCountInString(word)
		if size > 0 && size+1+wordSize > limit {
			flush()
		}
		if size > 0 {
			current.WriteByte(' ')
			size++
		}
		current.WriteString(word)
		size += wordSize
	}
	flush()
	return segments
}
