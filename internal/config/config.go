package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingEnv = errors.New("required env is not set")

// Config: всё, что пайплайн берёт из окружения. Собирается один раз в main.
type Config struct {
	Region          string
	Bucket          string
	Prefix          string
	DestinationLang string
	SourceLang      string

	TranscribeLanguageCode string
	MediaFormat            string
	PollInterval           time.Duration
	TranscribeTimeout      time.Duration

	InputDir        string
	InputExt        string
	WorkDir         string
	ContinueOnError bool

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Secure    bool

	TranslateProvider string
	TTSProvider       string

	OpenAIKey      string
	OpenAIModel    string
	OpenAITTSVoice string

	ElevenLabsKey     string
	ElevenLabsVoiceID string

	TelegramToken  string
	TelegramChatID int64

	DatabaseURL string
	StatusAddr  string
	StatusToken string
}

const (
	ProviderAWS        = "aws"
	ProviderOpenAI     = "openai"
	ProviderPolly      = "polly"
	ProviderElevenLabs = "elevenlabs"
)

// Load reads the process environment. godotenv.Load is expected to run before it.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Region:          env("AWS_REGION", ""),
		Bucket:          env("S3_BUCKET", ""),
		Prefix:          NormalizePrefix(env("S3_PREFIX", "BETA/")),
		DestinationLang: env("DESTINATION_LANG", "cy"),
		SourceLang:      env("SOURCE_LANG", "en"),

		TranscribeLanguageCode: env("TRANSCRIBE_LANGUAGE_CODE", "en-US"),
		MediaFormat:            env("MEDIA_FORMAT", "mp3"),

		InputDir: env("INPUT_DIR", "audio_inputs"),
		InputExt: env("INPUT_EXT", ".mp3"),
		WorkDir:  env("WORK_DIR", os.TempDir()),

		S3AccessKey: env("S3_ACCESS_KEY", ""),
		S3SecretKey: env("S3_SECRET_KEY", ""),

		TranslateProvider: strings.ToLower(env("TRANSLATE_PROVIDER", ProviderAWS)),
		TTSProvider:       strings.ToLower(env("TTS_PROVIDER", ProviderPolly)),

		OpenAIKey:      env("OPENAI_API_KEY", ""),
		OpenAIModel:    env("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITTSVoice: env("OPENAI_TTS_VOICE", "alloy"),

		ElevenLabsKey:     env("ELEVENLABS_API_KEY", ""),
		ElevenLabsVoiceID: env("ELEVENLABS_VOICE_ID", "EXAVITQu4vr4xnSDxMaL"),

		TelegramToken: env("TELEGRAM_BOT_TOKEN", ""),
		DatabaseURL:   env("DATABASE_URL", ""),
		StatusAddr:    env("STATUS_ADDR", ""),
		StatusToken:   env("STATUS_TOKEN", ""),
	}

	if cfg.Region == "" {
		return Config{}, fmt.Errorf("AWS_REGION: %w", ErrMissingEnv)
	}
	if cfg.Bucket == "" {
		return Config{}, fmt.Errorf("S3_BUCKET: %w", ErrMissingEnv)
	}
	if !strings.HasPrefix(cfg.InputExt, ".") {
		cfg.InputExt = "." + cfg.InputExt
	}

	cfg.S3Endpoint = env("S3_ENDPOINT", fmt.Sprintf("s3.%s.amazonaws.com", cfg.Region))

	var err error
	if cfg.PollInterval, err = parseDuration(env("POLL_INTERVAL", "5s")); err != nil {
		return Config{}, fmt.Errorf("POLL_INTERVAL: %w", err)
	}
	if cfg.TranscribeTimeout, err = parseDuration(env("TRANSCRIBE_TIMEOUT", "30m")); err != nil {
		return Config{}, fmt.Errorf("TRANSCRIBE_TIMEOUT: %w", err)
	}
	if cfg.ContinueOnError, err = strconv.ParseBool(env("CONTINUE_ON_ERROR", "false")); err != nil {
		return Config{}, fmt.Errorf("CONTINUE_ON_ERROR: %w", err)
	}
	if cfg.S3Secure, err = strconv.ParseBool(env("S3_SECURE", "true")); err != nil {
		return Config{}, fmt.Errorf("S3_SECURE: %w", err)
	}
	if raw := env("TELEGRAM_CHAT_ID", ""); raw != "" {
		if cfg.TelegramChatID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return Config{}, fmt.Errorf("TELEGRAM_CHAT_ID: %w", err)
		}
	}

	if err := cfg.validateProviders(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validateProviders() error {
	switch c.TranslateProvider {
	case ProviderAWS:
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY (translate provider %q): %w", c.TranslateProvider, ErrMissingEnv)
		}
	default:
		return fmt.Errorf("unknown TRANSLATE_PROVIDER %q", c.TranslateProvider)
	}

	switch c.TTSProvider {
	case ProviderPolly:
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY (tts provider %q): %w", c.TTSProvider, ErrMissingEnv)
		}
	case ProviderElevenLabs:
		if c.ElevenLabsKey == "" {
			return fmt.Errorf("ELEVENLABS_API_KEY: %w", ErrMissingEnv)
		}
	default:
		return fmt.Errorf("unknown TTS_PROVIDER %q", c.TTSProvider)
	}

	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID (telegram notifier): %w", ErrMissingEnv)
	}
	return nil
}

// NormalizePrefix makes a non-empty prefix end with exactly one slash.
func NormalizePrefix(p string) string {
	p = strings.TrimLeft(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return strings.TrimRight(p, "/") + "/"
}

func parseDuration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", raw)
	}
	return d, nil
}
