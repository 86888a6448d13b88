package generator

import "fmt"

// Temperatures per call site. The article uses a higher temperature for
// more creative long-form output.
const (
	TemperatureOutline   = 0.7
	TemperatureArticle   = 0.8
	TemperatureResources = 0.7
)

// OutlinePrompt asks for a hierarchical outline sized to the word range.
func OutlinePrompt(title, wordRange string) string {
	return fmt.Sprintf(
		"Create a detailed, structured outline for an article titled '%s' that should be approximately %s words. "+
			"Format it as a clear, hierarchical outline with main sections and subsections.",
		title, wordRange)
}

// ArticlePrompt asks for the full article built from the outline text.
func ArticlePrompt(title, outline, wordRange string) string {
	return fmt.Sprintf(
		"Write a complete, well-researched article titled '%s' using this outline:\n\n%s\n\n"+
			"The article should be approximately %s words. Make it engaging, informative, and professional. "+
			"Include an introduction, well-structured body paragraphs, and a conclusion.",
		title, outline, wordRange)
}

// ResourcesPrompt asks for exactly 5 authoritative references.
func ResourcesPrompt(title string) string {
	return fmt.Sprintf(
		"Provide 5 authoritative online resources (websites, articles, studies, or references) related to '%s'. "+
			"Format each as a clear title and description. Include why each resource is valuable.",
		title)
}
