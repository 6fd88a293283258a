package utils

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short url-safe identifier.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateShareSlug builds the public share slug for a project from its
// title plus a short random suffix, e.g. "offsite-planning-x3Fb91Q".
func GenerateShareSlug(title string) string {
	base := slug.Make(title)
	if base == "" {
		base = "project"
	}
	if len(base) > 48 {
		base = strings.Trim(base[:48], "-")
	}
	return fmt.Sprintf("%s-%s", base, GenerateID())
}
