package utils

import (
	"net/url"
	"strings"
)

// SlugFromURL extrai o slug (último segmento do caminho) de uma URL de
// página. É o identificador estável usado para casar páginas do Search
// Console com posts do blog na comparação de períodos
func SlugFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return ""
	}

	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}
