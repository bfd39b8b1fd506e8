// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package translate turns chapter text into other languages and polishes drafts
through a generative-text API.

The API is an external collaborator that may fail, stall, return nothing or
stop halfway. [Client] checks every answer before it is used:

  - an answer cut off at the length limit is rejected ([ErrTruncated]);
  - for HTML input the sequence of tags must survive unchanged ([ErrMarkupChanged]);
  - HTML output is sanitised before it reaches a reader, and sanitising must
    not change the tag structure either.

[Service] layers caching and the failure policy on top: reader translations
fall back to the original text, owner actions surface an error.
*/
package translate

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/taibuivan/novelia/internal/platform/metrics"
	"github.com/taibuivan/novelia/pkg/markup"
)

// Client errors.
var (
	ErrTruncated     = errors.New("translate: the AI response was cut off")
	ErrMarkupChanged = errors.New("translate: the AI response changed the markup")
	ErrNotConnected  = errors.New("translate: unexpected answer to the connection test")
)

// Request is one translation job.
type Request struct {
	Text   string
	Target string
	// MarkupAware marks Text as inline HTML whose tags must be preserved.
	MarkupAware bool
}

// Client wraps a [Generator] with prompts and output checks.
type Client struct {
	generator Generator
	timeout   time.Duration
	html      *bluemonday.Policy
	plain     *bluemonday.Policy
}

// NewClient returns a client that bounds every call by timeout.
func NewClient(generator Generator, timeout time.Duration) *Client {
	return &Client{
		generator: generator,
		timeout:   timeout,
		html:      bluemonday.UGCPolicy(),
		plain:     bluemonday.StrictPolicy(),
	}
}

const (
	translatorRole = "You are a professional literary translator."
	editorRole     = "You are a world-class editor."
	blurbRole      = "You write back-cover blurbs for fiction."

	keepMarkup = " The text is HTML. Keep every tag exactly as it is, in the same order, and translate only the text between tags."
	keepEdits  = " The text is HTML. Keep every tag exactly as it is, in the same order, and edit only the text between tags."
)

// Translate renders req.Text in req.Target. Empty text translates to "".
func (client *Client) Translate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", nil
	}

	system := translatorRole
	if req.MarkupAware {
		system += keepMarkup
	}

	prompt := fmt.Sprintf("Translate the following text into %s. Maintain the story's emotional tone, paragraph structure, and narrative style. Only return the translated text:\n\n%s",
		req.Target, req.Text)

	return client.transform(ctx, "translate", system, prompt, req.Text, req.MarkupAware)
}

// Improve corrects grammar, punctuation and flow of an HTML draft without
// changing its meaning.
func (client *Client) Improve(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	markupAware := markup.HasTags(text)
	system := editorRole
	if markupAware {
		system += keepEdits
	}

	prompt := "Improve the grammar, punctuation, and flow of the following story text. Ensure the vocabulary is engaging but keep the original meaning and tone exactly as it is. Only return the corrected text:\n\n" + text

	return client.transform(ctx, "improve", system, prompt, text, markupAware)
}

// GenerateSynopsis drafts a plain-text synopsis of at most 100 words.
func (client *Client) GenerateSynopsis(ctx context.Context, title, genre string) (string, error) {
	prompt := fmt.Sprintf("Write a synopsis of at most 100 words for a %s story titled %q. Plain text only, no headings or quotes.", genre, title)

	completion, err := client.complete(ctx, "synopsis", blurbRole, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(client.plain.Sanitize(completion)), nil
}

// Ping asks the API to echo a fixed word. It fails unless the answer contains it.
func (client *Client) Ping(ctx context.Context) error {
	answer, err := client.complete(ctx, "ping", "You are a health check.", "Respond with the word 'Connected'.")
	if err != nil {
		return err
	}
	if !strings.Contains(strings.ToLower(answer), "connected") {
		return ErrNotConnected
	}
	return nil
}

func (client *Client) transform(ctx context.Context, kind, system, prompt, input string, markupAware bool) (string, error) {
	output, err := client.complete(ctx, kind, system, prompt)
	if err != nil {
		return "", err
	}

	if !markupAware {
		return output, nil
	}

	if !slices.Equal(markup.Tags(input), markup.Tags(output)) {
		return "", ErrMarkupChanged
	}

	policy := client.policyFor(input)
	sanitized := policy.Sanitize(output)
	if !slices.Equal(markup.Tags(policy.Sanitize(input)), markup.Tags(sanitized)) {
		return "", ErrMarkupChanged
	}
	return sanitized, nil
}

// unsafeElements are never let through, even when the author wrote them.
var unsafeElements = map[string]bool{
	"script": true, "style": true, "iframe": true, "frame": true, "frameset": true,
	"object": true, "embed": true, "applet": true, "form": true, "input": true,
	"button": true, "textarea": true, "select": true, "link": true, "meta": true,
	"base": true, "svg": true, "math": true, "template": true, "noscript": true,
}

// policyFor extends the UGC policy with the harmless elements the author used,
// so legacy formatting such as <font> or <center> survives sanitising.
func (client *Client) policyFor(input string) *bluemonday.Policy {
	var authored []string
	for _, name := range markup.Tags(input) {
		name = strings.TrimPrefix(name, "/")
		if unsafeElements[name] || slices.Contains(authored, name) {
			continue
		}
		authored = append(authored, name)
	}
	if len(authored) == 0 {
		return client.html
	}

	policy := bluemonday.UGCPolicy()
	policy.AllowElements(authored...)
	policy.AllowNoAttrs().OnElements(authored...)
	policy.AllowAttrs("color", "face", "size").OnElements("font")
	policy.AllowAttrs("align").OnElements("center", "div", "p")
	return policy
}

// complete runs one bounded call and returns the trimmed, unfenced answer.
func (client *Client) complete(ctx context.Context, kind, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	started := time.Now()
	completion, err := client.generator.Complete(ctx, system, prompt)
	if err == nil && completion.Truncated {
		err = ErrTruncated
	}
	text := stripFence(completion.Text)
	if err == nil && text == "" {
		err = ErrEmptyResponse
	}
	metrics.ObserveAI(kind, started, err)

	if err != nil {
		return "", err
	}
	return text, nil
}

// stripFence removes a surrounding ``` code fence, which some models add to HTML answers.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}

	body := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	if newline := strings.IndexByte(body, '\n'); newline >= 0 && !strings.ContainsAny(body[:newline], " <") {
		body = body[newline+1:]
	}
	return strings.TrimSpace(body)
}
