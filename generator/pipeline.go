package generator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageSourcer supplies the header image for a title. Implementations
// are best-effort: ok is false when no image could be obtained.
type ImageSourcer interface {
	HeaderImage(ctx context.Context, title string) (url string, source ImageSource, ok bool)
}

const defaultLLMTimeout = 60 * time.Second

// Pipeline runs the serial outline, article, image, resources sequence
// for one request at a time. Outline and article failures abort the
// run; image and resources failures only degrade the result.
type Pipeline struct {
	llm    LLMClient
	images ImageSourcer
	log    *slog.Logger

	// LLMTimeout bounds each individual completion call.
	LLMTimeout time.Duration

	// Progress, when set, observes every state transition. It drives
	// the UI progress display and must not block.
	Progress func(State)
}

func NewPipeline(llm LLMClient, images ImageSourcer, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		llm:        llm,
		images:     images,
		log:        log,
		LLMTimeout: defaultLLMTimeout,
	}
}

// Run executes one generation run to a terminal state. On a fatal
// failure (config, outline, article) it returns a *StageError and no
// result; a previously returned result is never mutated.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.WordRange) == "" {
		p.step(StateConfigError)
		return nil, stageErr(StateConfigError, "title and word range are both required")
	}
	if p.llm == nil {
		p.step(StateConfigError)
		return nil, stageErr(StateConfigError, "no generation credential configured")
	}

	res := &Result{
		ID:        uuid.NewString(),
		Title:     req.Title,
		WordRange: req.WordRange,
		CreatedAt: time.Now().UTC(),
	}
	log := p.log.With("run_id", res.ID, "title", req.Title)

	p.step(StateOutline)
	outline, err := p.complete(ctx, OutlinePrompt(req.Title, req.WordRange), TemperatureOutline)
	if err != nil {
		p.step(StateOutlineFailed)
		log.Error("outline generation failed", "error", err)
		return nil, &StageError{State: StateOutlineFailed, Err: err}
	}
	res.Outline = outline

	p.step(StateArticle)
	article, err := p.complete(ctx, ArticlePrompt(req.Title, res.Outline, req.WordRange), TemperatureArticle)
	if err != nil {
		p.step(StateArticleFailed)
		log.Error("article generation failed", "error", err)
		return nil, &StageError{State: StateArticleFailed, Err: err}
	}
	res.Article = article

	p.step(StateImage)
	if p.images != nil {
		if url, source, ok := p.images.HeaderImage(ctx, req.Title); ok {
			res.ImageURL = url
			res.ImageSource = source
		}
	}
	if res.ImageURL == "" {
		log.Warn("header image unavailable")
		res.Warnings = append(res.Warnings, "could not obtain a header image")
	}

	p.step(StateResources)
	resources, err := p.complete(ctx, ResourcesPrompt(req.Title), TemperatureResources)
	if err != nil {
		log.Warn("resource suggestion failed", "error", err)
		res.Warnings = append(res.Warnings, "could not gather related resources")
	} else {
		res.Resources = resources
	}

	p.step(StateComplete)
	log.Info("generation complete",
		"outline_len", len(res.Outline),
		"article_len", len(res.Article),
		"image_source", string(res.ImageSource),
		"has_resources", res.Resources != "")
	return res, nil
}

// complete invokes the LLM with a bounded timeout and rejects empty
// output, so a blank completion counts as a failed call.
func (p *Pipeline) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.LLMTimeout)
	defer cancel()

	raw, err := p.llm.Complete(ctx, prompt, temperature)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", errors.New("model returned no usable content")
	}
	return text, nil
}

func (p *Pipeline) step(s State) {
	if p.Progress != nil {
		p.Progress(s)
	}
}
