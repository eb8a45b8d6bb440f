package generate

import "fmt"

// SystemPrompt frames the model as an editor bound by the style guide.
const SystemPrompt = "You are an expert literary editor. Your task is to rewrite a given text in the distinct style of a famous author. " +
	"You will be provided with a detailed, data-driven stylistic analysis of the target author's work. " +
	"You MUST adhere strictly to this analysis, focusing on sentence structure, grammar, and rhythm, not just word choice. " +
	"Do NOT add new ideas, content, or plot points. Preserve the original meaning and intent of the source text perfectly. " +
	"Rewrite ONLY the text provided."

// UserPrompt combines the style guide with the source text.
func UserPrompt(source, guide, author string) string {
	return fmt.Sprintf("%s\n\n"+
		"## Task\n\n"+
		"Rewrite the following source text into the style of %s. "+
		"Apply the stylistic rules from the analysis above meticulously.\n\n"+
		"### Source Text:\n\n%s\n\n"+
		"### Rewritten Text in the style of %s:", guide, author, source, author)
}
