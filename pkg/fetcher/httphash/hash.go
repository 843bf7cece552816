package httphash

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// HashContent returns the hex encoded sha256 of a response body. HTML bodies
// are reduced to their visible text first so that markup, inline scripts and
// whitespace changes do not alter the hash. Other content is hashed as is.
func HashContent(contentType string, body []byte) (string, error) {
	content := body
	if isHTML(contentType) {
		text, err := visibleText(contentType, body)
		if err != nil {
			return "", err
		}
		content = []byte(text)
	}

	sum := sha256.Sum256(content)

	return hex.EncodeToString(sum[:]), nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

func visibleText(contentType string, body []byte) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", fmt.Errorf("could not decode content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("could not parse html: %w", err)
	}
	doc.Find("script, style, noscript, template").Remove()

	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
