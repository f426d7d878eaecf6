package openai

import "strings"

// The few-shot prompt asks for summary text with no preamble and complete
// final sentences; bulletin entries get pasted verbatim, so a dangling
// half-sentence or an "Here is a summary:" opener would land in print.
func buildSummaryPrompt(text string) string {
	var b strings.Builder
	b.WriteString("I need you to summarize the following text. Start immediately with the summary content. ")
	b.WriteString("Never use introductory phrases. ")
	b.WriteString("IMPORTANT: Always end with complete sentences and proper punctuation. ")
	b.WriteString("If you're running out of space, prioritize finishing your current sentence rather than starting a new one.\n\n")
	b.WriteString("Here are some examples:\n\n")
	for _, ex := range fewShotExamples {
		b.WriteString("Text: ")
		b.WriteString(ex.text)
		b.WriteString("\n\nSummary: ")
		b.WriteString(ex.summary)
		b.WriteString("\n\n")
	}
	b.WriteString("Now please summarize this text:\n\nText: ")
	b.WriteString(text)
	b.WriteString("\n\nSummary:")
	return b.String()
}

var fewShotExamples = []struct {
	text    string
	summary string
}{
	{
		text: "Solar and wind power have become increasingly cost-competitive with fossil fuels over the past decade. " +
			"Many countries are investing heavily in renewable infrastructure development. " +
			"However, energy storage challenges remain a significant barrier to widespread adoption of these technologies.",
		summary: "Solar and wind power have become cost-competitive with fossil fuels, prompting heavy investment in " +
			"renewable infrastructure by many countries. Energy storage challenges remain a significant barrier to widespread adoption.",
	},
	{
		text: "The European Union has announced new regulations for artificial intelligence systems that will take effect in 2025. " +
			"These regulations will classify AI systems into different risk categories based on their potential impact on safety and " +
			"fundamental rights. High-risk AI applications, such as those used in healthcare, transportation, and law enforcement, " +
			"will face stricter oversight and compliance requirements. Companies will need to conduct risk assessments, implement " +
			"quality management systems, and ensure human oversight. The regulations aim to balance innovation with consumer " +
			"protection while establishing the EU as a global leader in AI governance.",
		summary: "The European Union has announced new AI regulations taking effect in 2025 that classify systems into risk " +
			"categories based on safety and rights impact. High-risk applications in healthcare, transportation, and law enforcement " +
			"will face stricter oversight, requiring companies to conduct risk assessments, implement quality management, and ensure " +
			"human oversight. The regulations aim to balance innovation with consumer protection while establishing EU leadership in AI governance.",
	},
}
