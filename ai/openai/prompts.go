package openai

import (
	"fmt"

	"github.com/opencivic/archivist/ai"
)

// recapSystemPrompt instructs the model to produce the structured recap as
// strict JSON. Keys must match recapResponse.
const recapSystemPrompt = `You are an assistant that writes recaps of public
meeting transcripts for a civic archive.

Given a transcript, respond with ONLY a JSON object of this exact shape:

{
  "summary": "2-4 sentence plain-language summary of the meeting",
  "article": "a longer newspaper-style writeup of the meeting",
  "decisions": ["each formal decision, vote or motion outcome"],
  "topics": ["each major topic discussed, 1-4 words"],
  "public_comments": ["one entry per public commenter, summarizing their point"]
}

Rules:
- Output valid JSON and nothing else. No markdown fences, no commentary.
- Leave a list empty rather than inventing content.
- Do not editorialize; report what was said and decided.`

// buildRecapPrompt renders the user message for a summarization call.
func buildRecapPrompt(transcript string, pctx ai.PromptContext) string {
	header := ""
	if pctx.Title != "" {
		header += fmt.Sprintf("Meeting: %s\n", pctx.Title)
	}
	if pctx.MeetingDate != "" {
		header += fmt.Sprintf("Date: %s\n", pctx.MeetingDate)
	}
	if header != "" {
		header += "\n"
	}
	return header + "Transcript:\n" + transcript
}
