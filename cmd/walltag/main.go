package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/viant/afs"
	_ "github.com/viant/afsc/gs" // gs:// table URLs
	_ "github.com/viant/afsc/s3" // s3:// table URLs

	"github.com/walltag/walltag/embeddings"
	"github.com/walltag/walltag/embeddings/ollama"
	"github.com/walltag/walltag/embeddings/openai"
	"github.com/walltag/walltag/embeddings/static"
	"github.com/walltag/walltag/export"
	"github.com/walltag/walltag/generator"
	"github.com/walltag/walltag/table"
)

func main() {
	startGops()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "generate":
		generateCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	case "match":
		matchCmd(os.Args[2:])
	case "export":
		exportCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: walltag <command> [options]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  generate  Embed the category catalog and write the binary table")
	fmt.Fprintln(os.Stderr, "  inspect   Print entries of a binary table")
	fmt.Fprintln(os.Stderr, "  match     Match a query against a binary table")
	fmt.Fprintln(os.Stderr, "  export    Materialize a binary table into SQLite")
}

func generateCmd(args []string) {
	flags := flag.NewFlagSet("generate", flag.ExitOnError)
	output := flags.String("o", "", "output table URL (required unless set in config)")
	configPath := flags.String("config", "", "config yaml (optional)")
	embedderName := flags.String("embedder", "", "embedder: openai|ollama|static")
	model := flags.String("model", "", "embedding model")
	openAIKey := flags.String("openai-key", "", "OpenAI API key (defaults to OPENAI_API_KEY)")
	ollamaURL := flags.String("ollama-url", "", "Ollama base URL")
	cacheURL := flags.String("cache", "", "prompt embedding cache URL (optional)")
	dim := flags.Int("dim", 0, "static embedder dimension")
	progress := flags.Bool("progress", false, "show generation progress")
	flags.Parse(args)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := &generator.Config{}
	if *configPath != "" {
		loaded, err := generator.LoadConfig(ctx, *configPath)
		if err != nil {
			log.Fatalf("generate: %v", err)
		}
		cfg = loaded
	}
	applyFlag(&cfg.Output, *output)
	applyFlag(&cfg.Embedder, *embedderName)
	applyFlag(&cfg.Model, *model)
	applyFlag(&cfg.APIKey, *openAIKey)
	applyFlag(&cfg.BaseURL, *ollamaURL)
	applyFlag(&cfg.Cache, *cacheURL)
	if *dim > 0 {
		cfg.Dimension = *dim
	}
	if cfg.Output == "" {
		flags.Usage()
		os.Exit(2)
	}

	options := []generator.Option{generator.WithModel(cfg.Model)}
	if cfg.Cache != "" {
		options = append(options, generator.WithCacheURL(cfg.Cache))
	}
	if *progress {
		options = append(options, generator.WithProgress(progressPrinter()))
	}
	svc, err := generator.New(selectEmbedder(cfg), options...)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	generated, err := svc.Generate(ctx, cfg.Output)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d categories (dim=%d) to %s\n", generated.Len(), generated.Dimension(), cfg.Output)
	for _, name := range generated.Names() {
		fmt.Println(name)
	}
}

func inspectCmd(args []string) {
	flags := flag.NewFlagSet("inspect", flag.ExitOnError)
	tableURL := flags.String("table", "", "table URL (required)")
	dim := flags.Int("dim", 0, "pin vector dimension instead of self-discovery")
	flags.Parse(args)
	if *tableURL == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loaded, err := loadTable(ctx, *tableURL, *dim)
	if err != nil {
		log.Fatalf("inspect: %v", err)
	}
	fmt.Printf("entries=%d dim=%d\n", loaded.Len(), loaded.Dimension())
	for _, entry := range loaded.Entries() {
		var norm float64
		for _, v := range entry.Vector {
			norm += float64(v) * float64(v)
		}
		fmt.Printf("  %s norm=%.4f\n", entry.Name, math.Sqrt(norm))
	}
}

func matchCmd(args []string) {
	flags := flag.NewFlagSet("match", flag.ExitOnError)
	tableURL := flags.String("table", "", "table URL (required)")
	dim := flags.Int("dim", 0, "pin vector dimension instead of self-discovery")
	query := flags.String("query", "", "query text to embed and match")
	vectorCSV := flags.String("vector", "", "comma-separated query vector (skips the embedder)")
	topN := flags.Int("n", 1, "number of matches to print")
	embedderName := flags.String("embedder", "", "embedder: openai|ollama|static")
	model := flags.String("model", "", "embedding model")
	openAIKey := flags.String("openai-key", "", "OpenAI API key (defaults to OPENAI_API_KEY)")
	ollamaURL := flags.String("ollama-url", "", "Ollama base URL")
	flags.Parse(args)
	if *tableURL == "" || (*query == "" && *vectorCSV == "") {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loaded, err := loadTable(ctx, *tableURL, *dim)
	if err != nil {
		log.Fatalf("match: %v", err)
	}

	var queryVector []float32
	if *vectorCSV != "" {
		queryVector, err = parseVector(*vectorCSV)
		if err != nil {
			log.Fatalf("match: %v", err)
		}
	} else {
		cfg := &generator.Config{
			Embedder:  *embedderName,
			Model:     *model,
			APIKey:    *openAIKey,
			BaseURL:   *ollamaURL,
			Dimension: loaded.Dimension(),
		}
		queryVector, err = selectEmbedder(cfg).EmbedQuery(ctx, *query)
		if err != nil {
			log.Fatalf("match: embed query: %v", err)
		}
	}

	matches, err := loaded.MatchN(queryVector, *topN)
	if err != nil {
		log.Fatalf("match: %v", err)
	}
	for _, match := range matches {
		fmt.Printf("%s\t%.6f\n", match.Name, match.Score)
	}
}

func exportCmd(args []string) {
	flags := flag.NewFlagSet("export", flag.ExitOnError)
	tableURL := flags.String("table", "", "table URL (required)")
	dim := flags.Int("dim", 0, "pin vector dimension instead of self-discovery")
	dbPath := flags.String("db", "", "SQLite database path (required)")
	flags.Parse(args)
	if *tableURL == "" || *dbPath == "" {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loaded, err := loadTable(ctx, *tableURL, *dim)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	if err := export.SQLite(ctx, *dbPath, loaded); err != nil {
		log.Fatalf("export: %v", err)
	}
	fmt.Fprintf(os.Stderr, "exported %d categories to %s\n", loaded.Len(), *dbPath)
}

func loadTable(ctx context.Context, URL string, dim int) (*table.Table, error) {
	var opts []table.ParseOption
	if dim > 0 {
		opts = append(opts, table.WithDimension(dim))
	}
	return table.Load(ctx, afs.New(), URL, opts...)
}

func selectEmbedder(cfg *generator.Config) embeddings.Embedder {
	switch strings.ToLower(strings.TrimSpace(cfg.Embedder)) {
	case "ollama":
		return &ollama.Embedder{C: ollama.NewClient(cfg.Model, ollama.WithBaseURL(cfg.BaseURL))}
	case "static":
		return static.New(cfg.Dimension)
	default:
		return &openai.Embedder{C: openai.NewClient(cfg.APIKey, cfg.Model)}
	}
}

func parseVector(csv string) ([]float32, error) {
	parts := strings.Split(csv, ",")
	out := make([]float32, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid vector component %q: %w", part, err)
		}
		out = append(out, float32(value))
	}
	return out, nil
}

func applyFlag(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func progressPrinter() generator.Progress {
	lastLen := 0
	return func(category string, current, total int) {
		line := fmt.Sprintf("embedded %d/%d %s", current, total, category)
		if lastLen > len(line) {
			line = line + strings.Repeat(" ", lastLen-len(line))
		}
		lastLen = len(line)
		fmt.Fprintf(os.Stderr, "\r%s", line)
		if current == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}

func startGops() {
	if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
		log.Printf("gops: %v", err)
	}
}
