package helpers

import (
	"context"
	"regexp"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// Slugify строит url-идентификатор вакансии из названия
func Slugify(str string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(str), "-")
	return strings.Trim(slug, "-")
}
