package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"article_agent/config"
	"article_agent/generator"
	"article_agent/images"
	"article_agent/logger"
	"article_agent/server"
)

func main() {
	configPath := flag.String("config", "", "path to optional config.yaml")
	serve := flag.Bool("serve", false, "start the web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config/PORT)")
	title := flag.String("title", "", "article title (one-shot mode)")
	words := flag.String("words", "", "target word range, e.g. 800-1000 (one-shot mode)")
	out := flag.String("out", "", "output markdown path (one-shot mode, defaults to the title)")
	mock := flag.Bool("mock", false, "use the mock LLM instead of OpenAI (local debugging)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(cfg.Log.Level, cfg.Log.Format)

	pipeline, err := buildPipeline(cfg, log, *mock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Web server mode
	if *serve {
		srv, err := server.New(pipeline, log)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ListenAddr()
		if *addr != "" {
			listen = *addr
		}
		log.Info("starting web server", "addr", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// One-shot mode: generate once and write the markdown export.
	if *title == "" || *words == "" {
		fmt.Fprintln(os.Stderr, "--title and --words are required (or use --serve)")
		os.Exit(1)
	}
	if !*mock {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	pipeline.Progress = func(s generator.State) {
		log.Info("pipeline progress", "state", string(s))
	}

	res, err := pipeline.Run(context.Background(), generator.Request{Title: *title, WordRange: *words})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, w := range res.Warnings {
		log.Warn(w)
	}
	if res.ImageURL != "" {
		log.Info("header image", "url", res.ImageURL, "source", string(res.ImageSource))
	}

	path := *out
	if path == "" {
		path = generator.Filename(res.Title)
	}
	if err := os.WriteFile(path, []byte(generator.Markdown(res)), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(path)
}

// buildPipeline wires the configured clients into a pipeline. A missing
// OpenAI key yields a pipeline without an LLM client, which reports a
// config error on the first run instead of at startup; the server can
// still come up and show that error in the UI.
func buildPipeline(cfg *config.Config, log *slog.Logger, mock bool) (*generator.Pipeline, error) {
	var llm generator.LLMClient
	switch {
	case mock:
		llm = generator.MockLLM{}
	case cfg.OpenAI.APIKey != "":
		client, err := generator.NewOpenAILLM(generator.LLMSettings{
			Model:   cfg.OpenAI.Model,
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		llm = client
	default:
		log.Warn("openai api key not configured; generation runs will fail with a config error")
	}

	var sourcer generator.ImageSourcer
	if cfg.OpenAI.APIKey != "" || cfg.Freepik.APIKey != "" {
		search := images.NewFreepikClient(cfg.Freepik.APIKey, nil, log)
		var gen images.Generator
		if cfg.OpenAI.APIKey != "" {
			gen = images.NewDalleClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, log)
		}
		sourcer = images.NewSourcer(search, gen, log)
	}

	p := generator.NewPipeline(llm, sourcer, log)
	if cfg.OpenAI.Timeout > 0 {
		p.LLMTimeout = cfg.OpenAI.Timeout
	}
	return p, nil
}
