package generator

import "time"

// ImageSource labels which tier produced the header image.
type ImageSource string

const (
	ImageSourceFreepik ImageSource = "freepik"
	ImageSourceDallE   ImageSource = "dall-e"
)

// Request describes one generation run. WordRange is free-form
// ("800-1000") and is passed through to the prompts verbatim.
type Request struct {
	Title     string `json:"title"`
	WordRange string `json:"word_range"`
}

// Result is the outcome of one pipeline run. It is populated
// incrementally during the run and immutable once returned; a new run
// fully replaces the previous result.
type Result struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	WordRange string `json:"word_range"`

	Outline string `json:"outline,omitempty"`
	Article string `json:"article,omitempty"`

	// ImageURL and ImageSource are either both set or both empty.
	ImageURL    string      `json:"image_url,omitempty"`
	ImageSource ImageSource `json:"image_source,omitempty"`

	Resources string `json:"resources,omitempty"`

	// Warnings records non-fatal degradations (header image or
	// resources unavailable) hit during the run.
	Warnings []string `json:"warnings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// State identifies a pipeline stage or terminal outcome.
type State string

const (
	StateIdle      State = "idle"
	StateOutline   State = "outline"
	StateArticle   State = "article"
	StateImage     State = "image"
	StateResources State = "resources"
	StateComplete  State = "complete"

	// Terminal failure states.
	StateConfigError   State = "config_error"
	StateOutlineFailed State = "outline_failed"
	StateArticleFailed State = "article_failed"
)
