// Package langdetect maps embedded template regions to the host plugin
// parser that can format them. It uses go-enry to detect the language of a
// region when the template tag does not name one.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Host plugin parser names.
const (
	ParserCSS      = "css"
	ParserGraphQL  = "graphql"
	ParserHTML     = "html"
	ParserSQL      = "sql"
	ParserJSON     = "json"
	ParserYAML     = "yaml"
	ParserMarkdown = "markdown"
)

// tagParsers maps well-known template-literal tag names to parser names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var tagParsers = map[string]string{
	"css":       ParserCSS,
	"styled":    ParserCSS,
	"keyframes": ParserCSS,
	"gql":       ParserGraphQL,
	"graphql":   ParserGraphQL,
	"html":      ParserHTML,
	"sql":       ParserSQL,
	"json":      ParserJSON,
	"yaml":      ParserYAML,
	"md":        ParserMarkdown,
	"markdown":  ParserMarkdown,
}

// ParserForTag returns the parser name for a template-literal tag such as
// css`…` or gql`…`. Member tags resolve by their last segment, so
// styled.div and styled("div") count as styled.
func ParserForTag(tag string) (string, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, ".("); i >= 0 {
		tag = tag[:i]
	}
	parser, ok := tagParsers[tag]
	return parser, ok
}

// DetectParser guesses the parser for untagged region content. It only
// answers when detection is safe; an unsafe guess means no delegation, so
// the region is left untouched.
func DetectParser(content []byte) (string, bool) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return "", false
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if parser := detectByPattern(trimmed); parser != "" {
		return parser, true
	}

	candidates := []string{"CSS", "GraphQL", "HTML", "SQL", "JSON", "YAML", "Markdown"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return "", false
}

// detectByPattern checks for patterns that are highly indicative on their
// own, ahead of the classifier.
func detectByPattern(trimmed []byte) string {
	lower := bytes.ToLower(trimmed)

	if bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<body>")) {
		return ParserHTML
	}

	if bytes.HasPrefix(trimmed, []byte("query ")) ||
		bytes.HasPrefix(trimmed, []byte("mutation ")) ||
		bytes.HasPrefix(trimmed, []byte("fragment ")) ||
		bytes.HasPrefix(trimmed, []byte("subscription ")) {
		return ParserGraphQL
	}

	upper := strings.ToUpper(string(trimmed))
	if strings.HasPrefix(upper, "SELECT ") ||
		strings.HasPrefix(upper, "INSERT ") ||
		strings.HasPrefix(upper, "UPDATE ") ||
		strings.HasPrefix(upper, "DELETE ") ||
		strings.HasPrefix(upper, "CREATE TABLE") {
		return ParserSQL
	}

	return ""
}

// normalize maps enry language names to parser names, rejecting languages
// no host plugin handles.
func normalize(lang string) (string, bool) {
	switch strings.ToLower(lang) {
	case "css":
		return ParserCSS, true
	case "graphql":
		return ParserGraphQL, true
	case "html":
		return ParserHTML, true
	case "sql":
		return ParserSQL, true
	case "json":
		return ParserJSON, true
	case "yaml":
		return ParserYAML, true
	case "markdown":
		return ParserMarkdown, true
	default:
		return "", false
	}
}
