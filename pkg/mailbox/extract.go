package mailbox

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// Payload mirrors the provider's message part tree: each part optionally
// carries base64url body data and child parts.
type Payload struct {
	MimeType string     `json:"mimeType"`
	Headers  []Header   `json:"headers"`
	Body     *BodyData  `json:"body,omitempty"`
	Parts    []*Payload `json:"parts,omitempty"`
}

// Header is a single RFC 822 header on a message part.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BodyData holds raw body bytes, base64url-encoded.
type BodyData struct {
	Size int    `json:"size"`
	Data string `json:"data,omitempty"`
}

var (
	styleBlockRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	scriptBlockRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	lineBreakRe   = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	multiNewline  = regexp.MustCompile(`\n{3,}`)

	onWroteRe     = regexp.MustCompile(`^On .*wrote:\s*$`)
	origMessageRe = regexp.MustCompile(`(?i)^-{3,}\s*Original Message\s*-{3,}`)
)

// ExtractBody walks a provider message payload and produces a plain-text
// body suitable for display and for AI drafting. It is pure and total: an
// unexpected payload shape yields an empty string, never an error.
func ExtractBody(p *Payload) string {
	text := extractText(p)
	return Clean(text)
}

// extractText pulls the raw text from the part tree without reply cleanup.
func extractText(p *Payload) string {
	if p == nil {
		return ""
	}

	// Direct body data on the payload itself.
	if p.Body != nil && p.Body.Data != "" {
		text := decodeBase64(p.Body.Data)
		if isHTML(p.MimeType) {
			text = StripHTML(text)
		}
		return text
	}

	// (a) first text/plain child with data
	for _, part := range p.Parts {
		if isPlain(part.MimeType) && hasData(part) {
			return decodeBase64(part.Body.Data)
		}
	}

	// (b) first text/html child with data
	for _, part := range p.Parts {
		if isHTML(part.MimeType) && hasData(part) {
			return StripHTML(decodeBase64(part.Body.Data))
		}
	}

	// (c) recurse into nested multiparts
	for _, part := range p.Parts {
		if len(part.Parts) > 0 {
			if text := extractText(part); text != "" {
				return text
			}
		}
	}

	// (d) fall back to the first child with any data at all
	for _, part := range p.Parts {
		if hasData(part) {
			text := decodeBase64(part.Body.Data)
			if isHTML(part.MimeType) {
				text = StripHTML(text)
			}
			return text
		}
	}

	return ""
}

// Clean trims quoted reply text and surrounding whitespace. It is idempotent
// on text that carries no quoting markers.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// "On ... wrote:" starts the quoted original; drop it and the rest.
		if onWroteRe.MatchString(trimmed) {
			break
		}
		// Everything after an Original Message divider is quoted history.
		if origMessageRe.MatchString(trimmed) {
			break
		}
		// Quoted lines themselves.
		if strings.HasPrefix(trimmed, ">") {
			continue
		}

		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// StripHTML converts an HTML body to readable plain text.
func StripHTML(html string) string {
	text := styleBlockRe.ReplaceAllString(html, "")
	text = scriptBlockRe.ReplaceAllString(text, "")
	text = lineBreakRe.ReplaceAllString(text, "\n")
	text = tagRe.ReplaceAllString(text, "")

	// The standard five entities plus the non-breaking space.
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = strings.ReplaceAll(text, "&amp;", "&")

	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func decodeBase64(data string) string {
	// Gmail uses URL-safe base64, padding optional.
	if decoded, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	if decoded, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	if decoded, err := base64.StdEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	return ""
}

func hasData(p *Payload) bool {
	return p != nil && p.Body != nil && p.Body.Data != ""
}

func isPlain(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(mimeType), "text/plain")
}

func isHTML(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(mimeType), "text/html")
}
