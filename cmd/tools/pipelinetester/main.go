package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/analysis/textstat"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/config"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/ai"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] could not load .env, using system environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if !cfg.AI.Enabled() {
		log.Fatal("inference credentials missing: set HF_API_KEY (https://huggingface.co/settings/tokens) or the Ark keys")
	}

	taskFlag := flag.String("task", "summarize", "pipeline to run: summarize or paraphrase")
	method := flag.String("method", "", "summarize method: abstractive or extractive (default abstractive)")
	length := flag.String("length", "", "summary length: short, medium, or long (default medium)")
	text := flag.String("text", "", "input text")
	file := flag.String("file", "", "read input text from a file instead of -text")
	timeout := flag.Duration("timeout", 60*time.Second, "request timeout")

	flag.Parse()

	input, err := readInput(*text, *file)
	if err != nil {
		flag.Usage()
		log.Fatalf("no input: %v", err)
	}

	op, err := task.ParseOperation(*taskFlag)
	if err != nil {
		flag.Usage()
		log.Fatalf("invalid -task: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	chatModel, err := cfg.AI.NewChatModel(ctx)
	if err != nil {
		log.Fatalf("failed to initialize chat model: %v", err)
	}

	svc, err := ai.NewService(ctx, chatModel, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize AI service: %v", err)
	}

	switch op {
	case task.OperationSummarize:
		runSummarize(ctx, svc, input, *method, *length)
	case task.OperationParaphrase:
		if strings.TrimSpace(*method) != "" || strings.TrimSpace(*length) != "" {
			log.Fatal("-method and -length apply to summarize only")
		}
		runParaphrase(ctx, svc, input)
	}
}

func readInput(text, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("provide -text or -file")
	}
	return text, nil
}

func runSummarize(ctx context.Context, svc *ai.Service, input, rawMethod, rawLength string) {
	method, err := task.ParseMethod(rawMethod)
	if err != nil {
		log.Fatalf("invalid -method: %v", err)
	}

	length, err := task.ParseLength(rawLength)
	if err != nil {
		log.Fatalf("invalid -length: %v", err)
	}

	log.Printf("running summarize: method=%s length=%s input_chars=%d", method, length, len(input))

	started := time.Now()
	output, err := svc.Summarize(ctx, input, method, length)
	if err != nil {
		log.Fatalf("summarize failed: %v", err)
	}

	report(input, output, time.Since(started))
}

func runParaphrase(ctx context.Context, svc *ai.Service, input string) {
	log.Printf("running paraphrase: input_chars=%d", len(input))

	started := time.Now()
	output, err := svc.Paraphrase(ctx, input)
	if err != nil {
		log.Fatalf("paraphrase failed: %v", err)
	}

	report(input, output, time.Since(started))
}

func report(input, output string, elapsed time.Duration) {
	in := textstat.Measure(input)
	out := textstat.Measure(output)

	fmt.Println(output)
	log.Printf("done in %s: input %d words / %d sentences, output %d words / %d sentences, compression %.1f%%",
		elapsed.Round(time.Millisecond), in.Words, in.Sentences, out.Words, out.Sentences, textstat.CompressionPct(in, out))
}
