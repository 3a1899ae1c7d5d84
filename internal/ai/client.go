// Package ai talks to an OpenAI-compatible provider: chat completions
// (plain, streamed and with tools), audio transcription and speech.
package ai

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/summarium/internal/config"
	"github.com/MKhiriev/summarium/internal/logger"
	"github.com/MKhiriev/summarium/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	chatPath          = "/chat/completions"
	transcriptionPath = "/audio/transcriptions"
	speechPath        = "/audio/speech"

	sseDataPrefix = "data:"
	sseDone       = "[DONE]"
)

//go:generate mockgen -source=client.go -destination=../mock/ai_mock.go -package=mock

// Provider is what the server's AI service needs from the upstream API.
type Provider interface {
	Chat(ctx context.Context, model string, messages []Message) (string, error)
	// ChatStream calls onDelta for every content fragment in arrival order.
	// An error returned by onDelta aborts the stream.
	ChatStream(ctx context.Context, model string, messages []Message, onDelta func(string) error) error
	ChatWithTools(ctx context.Context, model string, messages []Message, tools []Tool) (Message, error)
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
	Speech(ctx context.Context, text string) ([]byte, error)
}

// Client is the resty-based Provider.
type Client struct {
	http   *utils.HTTPClient
	cfg    config.AI
	logger *logger.Logger
}

func NewClient(cfg config.AI, log *logger.Logger) *Client {
	return &Client{
		http: utils.NewHTTPClient(
			utils.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")),
			utils.WithTimeout(cfg.RequestTimeout),
			utils.WithBearer(cfg.APIKey),
		),
		cfg:    cfg,
		logger: log,
	}
}

func (c *Client) Chat(ctx context.Context, model string, messages []Message) (string, error) {
	msg, err := c.complete(ctx, chatRequest{Model: model, Messages: messages})
	if err != nil {
		return "", err
	}
	return msg.Content, nil
}

func (c *Client) ChatWithTools(ctx context.Context, model string, messages []Message, tools []Tool) (Message, error) {
	return c.complete(ctx, chatRequest{Model: model, Messages: messages, Tools: tools})
}

func (c *Client) complete(ctx context.Context, body chatRequest) (Message, error) {
	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post(chatPath)
	if err := c.check("Client.complete", resp, err); err != nil {
		return Message{}, err
	}
	if len(out.Choices) == 0 {
		return Message{}, ErrEmptyCompletion
	}
	return out.Choices[0].Message, nil
}

func (c *Client) ChatStream(ctx context.Context, model string, messages []Message, onDelta func(string) error) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		SetBody(chatRequest{Model: model, Messages: messages, Stream: true}).
		Post(chatPath)
	if err != nil {
		return c.check("Client.ChatStream", resp, err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(body, 64<<10))
		return c.statusError("Client.ChatStream", resp.StatusCode(), raw)
	}

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, sseDataPrefix) {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, sseDataPrefix))
		if data == sseDone {
			return nil
		}

		var chunk chatChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			c.logger.Warn().Err(err).Str("func", "Client.ChatStream").Msg("skipping malformed chunk")
			continue
		}
		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			if err := onDelta(choice.Delta.Content); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	return nil
}

func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	var out transcriptionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, audio).
		SetFormData(map[string]string{"model": c.cfg.TranscriptionModel}).
		SetResult(&out).
		Post(transcriptionPath)
	if err := c.check("Client.Transcribe", resp, err); err != nil {
		return "", err
	}
	return out.Text, nil
}

// Speech synthesizes text as mp3. The provider accepts at most 4096
// characters per call; splitting is the caller's job.
func (c *Client) Speech(ctx context.Context, text string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(speechRequest{
			Model:          c.cfg.SpeechModel,
			Input:          text,
			Voice:          c.cfg.Voice,
			ResponseFormat: "mp3",
		}).
		Post(speechPath)
	if err := c.check("Client.Speech", resp, err); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *Client) check(fn string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Err(err).Str("func", fn).Msg("provider request failed")
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	if resp.IsError() {
		return c.statusError(fn, resp.StatusCode(), resp.Body())
	}
	return nil
}

func (c *Client) statusError(fn string, status int, body []byte) error {
	message := http.StatusText(status)
	var providerErr errorResponse
	if json.Unmarshal(body, &providerErr) == nil && providerErr.Error.Message != "" {
		message = providerErr.Error.Message
	}

	c.logger.Error().Str("func", fn).Int("status", status).Str("message", message).Msg("provider returned an error")

	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %d %s", ErrProviderUnavailable, status, message)
	}
	return fmt.Errorf("%w: %d %s", ErrProviderRejected, status, message)
}
