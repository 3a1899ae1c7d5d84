package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file, with
// durations accepted as strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		LogFile       string   `json:"log_file"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Redis struct {
			URL string `json:"url"`
		} `json:"redis"`
		Search struct {
			URL    string `json:"url"`
			APIKey string `json:"api_key"`
		} `json:"search"`
		Objects struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
			UseSSL    bool   `json:"use_ssl"`
			PublicURL string `json:"public_url"`
		} `json:"objects"`
		Files struct {
			SpeechDir string `json:"speech_dir"`
		} `json:"files"`
		Local struct {
			Path     string   `json:"path"`
			KeepLast int      `json:"keep_last"`
			MaxAge   Duration `json:"max_age"`
		} `json:"local"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PublicURL      string   `json:"public_url"`
	} `json:"server"`

	AI struct {
		BaseURL            string   `json:"base_url"`
		APIKey             string   `json:"api_key"`
		ChatModel          string   `json:"chat_model"`
		SuggestionModel    string   `json:"suggestion_model"`
		TranscriptionModel string   `json:"transcription_model"`
		SpeechModel        string   `json:"speech_model"`
		Voice              string   `json:"voice"`
		WordDelay          Duration `json:"word_delay"`
		RequestTimeout     Duration `json:"request_timeout"`
	} `json:"ai"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Editor struct {
		SaveDelay Duration `json:"save_delay"`
	} `json:"editor"`

	Workers struct {
		RetentionInterval Duration `json:"retention_interval"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			HashKey:       j.App.HashKey,
			Version:       j.App.Version,
			LogLevel:      j.App.LogLevel,
			LogFile:       j.App.LogFile,
		},
		Storage: Storage{
			DB:     DB{DSN: j.Storage.DB.DSN},
			Redis:  Redis{URL: j.Storage.Redis.URL},
			Search: Search{URL: j.Storage.Search.URL, APIKey: j.Storage.Search.APIKey},
			Objects: Objects{
				Endpoint:  j.Storage.Objects.Endpoint,
				AccessKey: j.Storage.Objects.AccessKey,
				SecretKey: j.Storage.Objects.SecretKey,
				Bucket:    j.Storage.Objects.Bucket,
				UseSSL:    j.Storage.Objects.UseSSL,
				PublicURL: j.Storage.Objects.PublicURL,
			},
			Files: Files{SpeechDir: j.Storage.Files.SpeechDir},
			Local: Local{
				Path:     j.Storage.Local.Path,
				KeepLast: j.Storage.Local.KeepLast,
				MaxAge:   time.Duration(j.Storage.Local.MaxAge),
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			PublicURL:      j.Server.PublicURL,
		},
		AI: AI{
			BaseURL:            j.AI.BaseURL,
			APIKey:             j.AI.APIKey,
			ChatModel:          j.AI.ChatModel,
			SuggestionModel:    j.AI.SuggestionModel,
			TranscriptionModel: j.AI.TranscriptionModel,
			SpeechModel:        j.AI.SpeechModel,
			Voice:              j.AI.Voice,
			WordDelay:          time.Duration(j.AI.WordDelay),
			RequestTimeout:     time.Duration(j.AI.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Editor:  Editor{SaveDelay: time.Duration(j.Editor.SaveDelay)},
		Workers: Workers{RetentionInterval: time.Duration(j.Workers.RetentionInterval)},
	}, nil
}

// Duration is a time.Duration that unmarshals from "1h"-style strings.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
