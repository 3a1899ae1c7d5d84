package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/summarium/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type aiMode int

const (
	aiComplete aiMode = iota
	aiChat
	aiSpeech
	aiTranscribe
)

var aiModeNames = []string{"Complete", "Chat", "Speech", "Transcribe"}

func (m aiMode) String() string { return aiModeNames[m] }

func (m aiMode) next() aiMode { return (m + 1) % aiMode(len(aiModeNames)) }

// aiPanel runs one assistant request at a time against the open editor.
type aiPanel struct {
	mode    aiMode
	input   textinput.Model
	output  strings.Builder
	running bool
	cancel  context.CancelFunc
	history []models.ChatMessage
	urls    []string
}

// aiDeltaMsg carries a streamed piece of the answer.
type aiDeltaMsg struct {
	editorID int
	text     string
}

type aiDoneMsg struct {
	editorID int
	mode     aiMode
	urls     []string
	err      error
}

func newAIPanel() *aiPanel {
	p := &aiPanel{input: textinput.New()}
	p.input.CharLimit = 4000
	p.input.Width = 60
	p.setMode(aiComplete)
	return p
}

func (p *aiPanel) setMode(mode aiMode) {
	p.mode = mode
	p.output.Reset()
	p.urls = nil
	p.input.SetValue("")
	switch mode {
	case aiComplete:
		p.input.Placeholder = "Prompt (empty continues the text)"
	case aiChat:
		p.input.Placeholder = "Ask anything"
	case aiSpeech:
		p.input.Placeholder = "Text to read (empty reads the whole text)"
	case aiTranscribe:
		p.input.Placeholder = "Path to an audio file"
	}
	p.input.Focus()
}

func (m *mainLoopModel) updateAI(msg tea.KeyMsg) tea.Cmd {
	e := m.editor
	p := e.ai

	switch msg.String() {
	case "esc":
		if p.running {
			// only transcription can be aborted
			if p.mode == aiTranscribe && p.cancel != nil {
				p.cancel()
			}
			return nil
		}
		e.ai = nil
		return nil
	case "ctrl+g":
		if !p.running {
			e.ai = nil
		}
		return nil
	case "tab":
		if !p.running {
			p.setMode(p.mode.next())
		}
		return nil
	case "ctrl+y":
		text := p.output.String()
		if len(p.urls) > 0 {
			text = strings.Join(p.urls, "\n")
		}
		if text == "" {
			return nil
		}
		if err := clipboard.WriteAll(text); err != nil {
			return toast("Copy failed: " + err.Error())
		}
		return toast("Copied to clipboard")
	case "enter":
		if p.running {
			return nil
		}
		return m.startAI(e)
	}

	if p.running {
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// startAI runs the request of the panel's mode. Streamed pieces reach the
// program through the bridge; the command itself returns aiDoneMsg.
func (m *mainLoopModel) startAI(e *editorScreen) tea.Cmd {
	p := e.ai
	input := strings.TrimSpace(p.input.Value())
	ai, bridge, editorID, mode := m.services.AIService, m.bridge, e.id, p.mode

	ctx, cancel := context.WithCancel(m.ctx)
	p.cancel = cancel
	p.running = true
	p.output.Reset()
	p.urls = nil

	onDelta := func(text string) {
		bridge.Send(aiDeltaMsg{editorID: editorID, text: text})
	}
	done := func(urls []string, err error) tea.Msg {
		cancel()
		return aiDoneMsg{editorID: editorID, mode: mode, urls: urls, err: err}
	}

	switch mode {
	case aiComplete:
		prompt := input
		if prompt == "" {
			prompt = e.session.PlainText()
		}
		return func() tea.Msg {
			return done(nil, ai.Complete(ctx, prompt, onDelta))
		}

	case aiChat:
		if input == "" {
			p.running = false
			cancel()
			return nil
		}
		p.history = append(p.history, models.ChatMessage{Role: "user", Content: input})
		messages := append([]models.ChatMessage(nil), p.history...)
		p.input.SetValue("")
		return func() tea.Msg {
			return done(nil, ai.Chat(ctx, messages, onDelta))
		}

	case aiSpeech:
		text := input
		if text == "" {
			text = e.session.PlainText()
		}
		id := e.entityID()
		return func() tea.Msg {
			urls, err := ai.Speech(ctx, id, text)
			return done(urls, err)
		}

	case aiTranscribe:
		path := input
		return func() tea.Msg {
			f, err := os.Open(path)
			if err != nil {
				return done(nil, err)
			}
			defer f.Close()
			return done(nil, ai.Transcribe(ctx, filepath.Base(path), f, func(word string) {
				onDelta(word + " ")
			}))
		}
	}

	p.running = false
	cancel()
	return nil
}

// handleAIMsg applies streamed and final assistant results to the open
// editor. It reports false for messages of another kind.
func (m *mainLoopModel) handleAIMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case aiDeltaMsg:
		if p := m.aiFor(msg.editorID); p != nil && p.running {
			p.output.WriteString(msg.text)
		}
		return nil, true

	case aiDoneMsg:
		p := m.aiFor(msg.editorID)
		if p == nil {
			return nil, true
		}
		p.running = false
		p.cancel = nil
		if msg.err != nil {
			if errors.Is(msg.err, context.Canceled) {
				return toast(msg.mode.String() + " cancelled"), true
			}
			return toast(humanizeError(msg.err)), true
		}

		switch msg.mode {
		case aiComplete:
			m.editor.insert(p.output.String())
		case aiTranscribe:
			m.editor.insert(strings.TrimSpace(p.output.String()))
		case aiChat:
			p.history = append(p.history, models.ChatMessage{Role: "assistant", Content: p.output.String()})
			// the assistant may have created tasks
			return m.cmdLoadTasks(), true
		case aiSpeech:
			p.urls = msg.urls
		}
		return nil, true
	}
	return nil, false
}

func (m *mainLoopModel) aiFor(editorID int) *aiPanel {
	if m.editor == nil || m.editor.id != editorID {
		return nil
	}
	return m.editor.ai
}

func (p *aiPanel) view() string {
	var b strings.Builder
	for i, name := range aiModeNames {
		if aiMode(i) == p.mode {
			b.WriteString(activeTabStyle.Render(name))
		} else {
			b.WriteString(tabStyle.Render(name))
		}
	}
	b.WriteString("\n\n")

	if p.mode == aiChat {
		for _, msg := range p.history {
			b.WriteString(titleStyle.Render(msg.Role + ":"))
			b.WriteString(" ")
			b.WriteString(msg.Content)
			b.WriteString("\n")
		}
	}

	b.WriteString(p.input.View())
	b.WriteString("\n")

	if p.running {
		b.WriteString(helpStyle.Render("working..."))
		b.WriteString("\n")
	}
	if out := p.output.String(); out != "" && (p.running || p.mode != aiChat) {
		b.WriteString("\n")
		b.WriteString(out)
		b.WriteString("\n")
	}
	for _, u := range p.urls {
		b.WriteString(u)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *aiPanel) hotKeys() string {
	if p.running {
		if p.mode == aiTranscribe {
			return "esc: cancel transcription"
		}
		return "waiting for the assistant"
	}
	return "enter: run │ tab: mode │ ctrl+y: copy result │ esc: close"
}
