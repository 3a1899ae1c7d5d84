package config

import "time"

// Defaults applied after every other source.
const (
	DefaultHTTPAddress        = "localhost:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultTokenIssuer        = "summarium"
	DefaultTokenDuration      = 24 * time.Hour
	DefaultLogLevel           = "info"
	DefaultSpeechDir          = "static/speech"
	DefaultLocalDBPath        = "summarium_notes_db"
	DefaultKeepLast           = 50
	DefaultMaxAge             = 90 * 24 * time.Hour
	DefaultSaveDelay          = time.Second
	DefaultRetentionInterval  = time.Hour
	DefaultAIBaseURL          = "https://api.openai.com/v1"
	DefaultChatModel          = "gpt-4o-mini"
	DefaultTranscriptionModel = "whisper-1"
	DefaultSpeechModel        = "tts-1"
	DefaultVoice              = "alloy"
	DefaultWordDelay          = 50 * time.Millisecond
	DefaultAIRequestTimeout   = 2 * time.Minute
	DefaultObjectsBucket      = "summarium-speech"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       "dev",
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			Objects: Objects{Bucket: DefaultObjectsBucket},
			Files:   Files{SpeechDir: DefaultSpeechDir},
			Local: Local{
				Path:     DefaultLocalDBPath,
				KeepLast: DefaultKeepLast,
				MaxAge:   DefaultMaxAge,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		AI: AI{
			BaseURL:            DefaultAIBaseURL,
			ChatModel:          DefaultChatModel,
			SuggestionModel:    DefaultChatModel,
			TranscriptionModel: DefaultTranscriptionModel,
			SpeechModel:        DefaultSpeechModel,
			Voice:              DefaultVoice,
			WordDelay:          DefaultWordDelay,
			RequestTimeout:     DefaultAIRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Editor:  Editor{SaveDelay: DefaultSaveDelay},
		Workers: Workers{RetentionInterval: DefaultRetentionInterval},
	}
}
