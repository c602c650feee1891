package responder

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences/english"

	"docnav/internal/generate"
	"docnav/internal/knowledge"
	"docnav/internal/models"
)

// systemPrompt is the fixed instruction block sent on every generative call.
const systemPrompt = `You are the NVIDIA Doc Navigator.
You answer ONLY using public NVIDIA information.
When unsure, say "I cannot verify this from public data."
Always cite the specific docs or GitHub repo URLs.
Return step-by-step guidance, code examples, and version requirements.
Never hallucinate unreleased hardware, internal systems, or private APIs.`

// maxContextSentences bounds the reference block so prompts stay small even
// for template bodies with long prose.
const maxContextSentences = 12

var tokenizer, _ = english.NewSentenceTokenizer(nil)

// buildMessages assembles the chat messages for the generative path: the
// system instruction, a reference-context block built from the category's
// sources and template body, and the user's query.
func buildMessages(cat models.Category, query string, sources []models.SourceReference) []generate.ChatMessage {
	var ctxBlock strings.Builder
	ctxBlock.WriteString("Reference documentation:\n")
	for i, src := range sources {
		fmt.Fprintf(&ctxBlock, "%d. %s — %s\n", i+1, src.Title, src.URL)
	}
	ctxBlock.WriteString("\nBackground notes:\n")
	ctxBlock.WriteString(trimSentences(knowledge.RenderTemplate(cat, query), maxContextSentences))

	return []generate.ChatMessage{
		{Role: generate.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: generate.ChatMessageRoleUser, Content: fmt.Sprintf("Context:\n%s\n\nQuestion: %s", ctxBlock.String(), query)},
	}
}

// trimSentences keeps at most n sentences of text, falling back to the
// untrimmed text if tokenization yields nothing.
func trimSentences(text string, n int) string {
	if tokenizer == nil {
		return text
	}
	sents := tokenizer.Tokenize(text)
	if len(sents) == 0 || len(sents) <= n {
		return text
	}
	var b strings.Builder
	for _, s := range sents[:n] {
		b.WriteString(s.Text)
	}
	return b.String()
}
