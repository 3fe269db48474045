package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Vovarama1992/dub_pipeline/internal/ai"
	"github.com/Vovarama1992/dub_pipeline/internal/config"
	"github.com/Vovarama1992/dub_pipeline/internal/delivery"
	"github.com/Vovarama1992/dub_pipeline/internal/domain"
	"github.com/Vovarama1992/dub_pipeline/internal/infra"
	"github.com/Vovarama1992/dub_pipeline/internal/notificator"
	"github.com/Vovarama1992/dub_pipeline/internal/pipeline"
	"github.com/Vovarama1992/dub_pipeline/internal/speech"
	"github.com/Vovarama1992/dub_pipeline/internal/transcription"
	"github.com/Vovarama1992/dub_pipeline/internal/translation"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	sugar := baseLogger.Sugar().With("service", "dub_pipeline")
	zl := logger.NewZapLogger(baseLogger.Sugar())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	s3Client, err := infra.NewS3Client(ctx, infra.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Secure:    cfg.S3Secure,
	})
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}

	awsSession, err := infra.NewAWSSession(cfg.Region, cfg.S3AccessKey, cfg.S3SecretKey)
	if err != nil {
		log.Fatalf("failed to init aws session: %v", err)
	}

	var records pipeline.Recorder = infra.NopRecordRepo{}
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer db.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			log.Fatalf("db ping failed: %v", err)
		}
		if err := infra.EnsureRecordsSchema(ctx, db); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		records = infra.NewRecordRepo(db)
	}

	// =========================================================================
	// NOTIFICATION
	// =========================================================================

	var notifyInfra notificator.Notificator = notificator.Nop{}
	if cfg.TelegramToken != "" {
		tg, err := notificator.NewTelegramInfra(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("failed to init telegram notifier: %v", err)
		}
		notifyInfra = tg
	}
	notifyService := notificator.NewService(notifyInfra)

	// =========================================================================
	// CLIENTS (TRANSCRIBE / TRANSLATE / TTS)
	// =========================================================================

	var openAIClient *ai.OpenAIClient
	if cfg.OpenAIKey != "" {
		openAIClient = ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	}

	var translateClient translation.Client
	switch cfg.TranslateProvider {
	case config.ProviderOpenAI:
		translateClient = translation.NewOpenAIClient(openAIClient)
	default:
		translateClient = translation.NewAWSClient(awsSession)
	}

	var ttsClient speech.Client
	voices := speech.PollyVoices()
	switch cfg.TTSProvider {
	case config.ProviderOpenAI:
		ttsClient = speech.NewOpenAITTS(openAIClient)
		voices = speech.SingleVoice(cfg.OpenAITTSVoice)
	case config.ProviderElevenLabs:
		ttsClient = speech.NewElevenLabsClient(cfg.ElevenLabsKey)
		voices = speech.SingleVoice(cfg.ElevenLabsVoiceID)
	default:
		ttsClient = speech.NewPollyClient(awsSession)
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	keys := domain.NewKeyLayout(cfg.Prefix, cfg.DestinationLang, speech.OutputFormat)
	s3Service := domain.NewS3Service(s3Client, sugar)

	runner := transcription.NewRunner(
		transcription.NewAWSClient(awsSession),
		transcription.Options{
			Bucket:       cfg.Bucket,
			LanguageCode: cfg.TranscribeLanguageCode,
			MediaFormat:  cfg.MediaFormat,
			PollInterval: cfg.PollInterval,
			MaxWait:      cfg.TranscribeTimeout,
			OutputKey:    keys.TranscriptJSON,
		},
		sugar,
	)

	pipelineService := pipeline.NewService(
		pipeline.Deps{
			Storage:     s3Service,
			Transcriber: runner,
			Translator:  translation.NewService(translateClient, cfg.SourceLang, cfg.DestinationLang),
			Synthesizer: speech.NewService(ttsClient, voices),
			Notifier:    notifyService,
			Records:     records,
		},
		keys,
		pipeline.Options{
			InputDir:        cfg.InputDir,
			InputExt:        cfg.InputExt,
			WorkDir:         cfg.WorkDir,
			ContinueOnError: cfg.ContinueOnError,
		},
		sugar,
	)

	// =========================================================================
	// STATUS SERVER (optional)
	// =========================================================================

	if cfg.StatusAddr != "" {
		statusHandler := delivery.NewStatusHandler(pipelineService.Tracker(), zl)
		srv := &http.Server{
			Addr:              cfg.StatusAddr,
			Handler:           delivery.NewRouter(statusHandler, cfg.StatusToken),
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			zl.Log(logger.LogEntry{
				Level:   "info",
				Message: "status server listening at " + cfg.StatusAddr,
				Service: "dub_pipeline",
			})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				sugar.Errorw("status server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	// =========================================================================
	// RUN
	// =========================================================================

	sugar.Infow("starting batch",
		"bucket", cfg.Bucket,
		"prefix", cfg.Prefix,
		"lang", cfg.DestinationLang,
		"translate", cfg.TranslateProvider,
		"tts", cfg.TTSProvider,
	)

	report, err := pipelineService.Run(ctx)
	if err != nil {
		sugar.Errorw("batch failed",
			"run_id", report.RunID,
			"succeeded", report.Succeeded(),
			"failed", report.Failed(),
			"error", err,
		)
		baseLogger.Sync()
		os.Exit(1)
	}

	sugar.Infow("batch done", "run_id", report.RunID, "files", len(report.Files))
}
