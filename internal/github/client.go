// Package github adapts the GitHub emoji endpoint: a JSON object mapping
// shortcode ids to image URLs. Each entry is classified by its URL as
// either a Unicode codepoint sequence or a GitHub-hosted custom asset.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/hsqStephenZhang/emoji-cheat-sheet/internal/emoji"
	"github.com/hsqStephenZhang/emoji-cheat-sheet/pkg/interfaces"
)

// ErrMalformedSource marks a shortcode payload that cannot be used: the
// body is not a JSON object of strings, or a Unicode image URL carries an
// invalid hex codepoint. Always fatal.
var ErrMalformedSource = errors.New("malformed shortcode source")

// Client is the ShortcodeSource backed by the live endpoint.
type Client struct {
	fetcher interfaces.BodyFetcher
	url     string
}

// NewClient creates a Client fetching from the given endpoint URL.
func NewClient(fetcher interfaces.BodyFetcher, endpointURL string) *Client {
	return &Client{fetcher: fetcher, url: endpointURL}
}

// Fetch retrieves and classifies the full shortcode map.
func (c *Client) Fetch(ctx context.Context) ([]emoji.Entry, error) {
	body, err := c.fetcher.Get(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("fetching shortcode source %s: %w", c.url, err)
	}
	entries, err := ParseEmojiMap(body)
	if err != nil {
		return nil, err
	}
	log.Info().Int("entries", len(entries)).Str("url", c.url).Msg("Shortcode source loaded")
	return entries, nil
}

// ParseEmojiMap decodes the `{id: url}` JSON object into classified
// entries, preserving document order. A duplicate id overwrites the
// earlier value in place (last write wins), matching what a plain map
// decode would do.
func ParseEmojiMap(data []byte) ([]emoji.Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: body is not a JSON object", ErrMalformedSource)
	}

	var entries []emoji.Entry
	seen := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string key", ErrMalformedSource)
		}
		var imageURL string
		if err := dec.Decode(&imageURL); err != nil {
			return nil, fmt.Errorf("%w: value of %q is not a string: %v", ErrMalformedSource, id, err)
		}
		literal, err := Classify(id, imageURL)
		if err != nil {
			return nil, err
		}
		if idx, dup := seen[id]; dup {
			entries[idx].Literal = literal
			continue
		}
		seen[id] = len(entries)
		entries = append(entries, emoji.Entry{ID: id, Literal: literal})
	}
	return entries, nil
}

// Classify derives the literal for one shortcode from its image URL. A
// URL whose path has a "unicode" segment immediately before the file name
// encodes hyphen-separated hex codepoints; anything else is a custom
// asset named by the file stem.
func Classify(id, imageURL string) (emoji.Literal, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return emoji.Literal{}, fmt.Errorf("%w: id %q has unparsable URL %q: %v", ErrMalformedSource, id, imageURL, err)
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	stem := strings.TrimSuffix(segments[len(segments)-1], ".png")
	if stem == "" {
		return emoji.Literal{}, fmt.Errorf("%w: id %q has empty image name in %q", ErrMalformedSource, id, imageURL)
	}

	if len(segments) < 2 || segments[len(segments)-2] != "unicode" {
		return emoji.CustomLiteral(stem), nil
	}

	parts := strings.Split(stem, "-")
	codepoints := make([]rune, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseUint(part, 16, 32)
		if err != nil || !utf8.ValidRune(rune(value)) {
			return emoji.Literal{}, fmt.Errorf("%w: id %q has invalid codepoint %q", ErrMalformedSource, id, part)
		}
		codepoints = append(codepoints, rune(value))
	}
	return emoji.UnicodeLiteral(codepoints), nil
}
