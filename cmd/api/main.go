package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/config"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/handler"
	taskModel "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/scheduler"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/ai"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/export"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The service is useless without an inference credential, so refuse to
	// start instead of serving a degraded UI.
	if !cfg.AI.Enabled() {
		if cfg.AI.Provider == config.ProviderArk {
			log.Fatal("Ark credentials are not set. Provide ARK_API_KEY (or ARK_ACCESS_KEY + ARK_SECRET_KEY) and MODEL before starting the server.")
		}
		log.Fatal("HF_API_KEY is not set. Create an access token at https://huggingface.co/settings/tokens and export it before starting the server.")
	}

	chatModel, err := cfg.AI.NewChatModel(ctx)
	if err != nil {
		log.Fatalf("failed to initialize chat model: %v", err)
	}

	aiService, err := ai.NewService(ctx, chatModel, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize AI service: %v", err)
	}
	log.Printf("AI service initialized (provider=%s, model=%s)", cfg.AI.Provider, cfg.AI.Model)

	taskStore := taskModel.NewMemoryStore(taskModel.Seed())
	sessionService := session.NewService()

	exportService := export.NewService(cfg.Export.Dir)
	if cfg.Export.Dir == "" {
		log.Println("warning: no export directory resolved, saving output will fail until EXPORT_DIR is set")
	}

	janitor := scheduler.New(sessionService, cfg.Session.MaxIdle)
	if err := janitor.Start(); err != nil {
		log.Fatalf("failed to start session janitor: %v", err)
	}
	defer janitor.Stop()

	router := handler.NewRouter(taskStore, sessionService, aiService, exportService)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("text summarizer backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
