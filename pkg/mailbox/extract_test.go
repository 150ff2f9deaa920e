package mailbox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func b64(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestExtractBody_DirectPlain(t *testing.T) {
	payload := &Payload{
		MimeType: "text/plain",
		Body:     &BodyData{Data: b64("Hello there")},
	}
	assert.Equal(t, "Hello there", ExtractBody(payload))
}

func TestExtractBody_DirectHTML(t *testing.T) {
	payload := &Payload{
		MimeType: "text/html",
		Body:     &BodyData{Data: b64("<p>Hello <b>there</b></p>")},
	}
	assert.Equal(t, "Hello there", ExtractBody(payload))
}

func TestExtractBody_PrefersPlainOverHTML(t *testing.T) {
	payload := &Payload{
		MimeType: "multipart/alternative",
		Parts: []*Payload{
			{MimeType: "text/html", Body: &BodyData{Data: b64("<p>html version</p>")}},
			{MimeType: "text/plain; charset=UTF-8", Body: &BodyData{Data: b64("plain version")}},
		},
	}
	assert.Equal(t, "plain version", ExtractBody(payload))
}

func TestExtractBody_NestedMultipart(t *testing.T) {
	payload := &Payload{
		MimeType: "multipart/mixed",
		Parts: []*Payload{
			{
				MimeType: "multipart/alternative",
				Parts: []*Payload{
					{MimeType: "text/plain", Body: &BodyData{Data: b64("nested body")}},
				},
			},
			{MimeType: "application/pdf", Body: &BodyData{Data: b64("%PDF")}},
		},
	}
	assert.Equal(t, "nested body", ExtractBody(payload))
}

func TestExtractBody_GarbageYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", ExtractBody(nil))
	assert.Equal(t, "", ExtractBody(&Payload{MimeType: "text/plain"}))
	assert.Equal(t, "", ExtractBody(&Payload{
		MimeType: "text/plain",
		Body:     &BodyData{Data: "!!!not base64!!!"},
	}))
}

func TestClean_TrimsQuotedReply(t *testing.T) {
	raw := "Sounds good, let's talk Tuesday.\n\nOn Mon, Aug 25, 2026 at 9:12 AM Sam Rivera wrote:\n> Hi Ana,\n> Following up on my note."
	assert.Equal(t, "Sounds good, let's talk Tuesday.", Clean(raw))
}

func TestClean_TrimsOriginalMessageDivider(t *testing.T) {
	raw := "Yes please send the contract.\n----- Original Message -----\nFrom: Sam"
	assert.Equal(t, "Yes please send the contract.", Clean(raw))
}

func TestClean_DropsQuotedLines(t *testing.T) {
	raw := "Works for me.\n> earlier text\n> more earlier text\nThanks!"
	assert.Equal(t, "Works for me.\nThanks!", Clean(raw))
}

func TestClean_Idempotent(t *testing.T) {
	raw := "Plain reply with no quoting at all."
	once := Clean(raw)
	assert.Equal(t, once, Clean(once))
}

func TestStripHTML(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head>` +
		`<body><script>alert(1)</script><div>First line</div><p>Second &amp; third &lt;lines&gt;</p></body></html>`
	got := StripHTML(html)
	assert.Contains(t, got, "First line")
	assert.Contains(t, got, "Second & third <lines>")
	assert.NotContains(t, got, "color: red")
	assert.NotContains(t, got, "alert")
}

func TestStripHTML_NonBreakingSpace(t *testing.T) {
	got := StripHTML("<p>Hola&nbsp;Sofia,&nbsp;saludos</p>")
	assert.Equal(t, "Hola Sofia, saludos", got)
	assert.NotContains(t, got, "&nbsp;")
}
