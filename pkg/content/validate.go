package content

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxParagraphWords = 300
	minContentChars   = 300
)

var (
	h1Pattern        = regexp.MustCompile(`(?m)<h1[^>]*>|^# `)
	h2Pattern        = regexp.MustCompile(`(?m)<h2[^>]*>|^## `)
	paragraphSplit   = regexp.MustCompile(`</p>|\n\n`)
	imgPattern       = regexp.MustCompile(`<img[^>]*>`)
	headingPattern   = regexp.MustCompile(`(?m)<h[1-6][^>]*>|^#{1,6} `)
	linkPattern      = regexp.MustCompile(`<a[^>]*href`)
	paragraphPattern = regexp.MustCompile(`<p[^>]*>`)
)

// Validation is the editor checklist result. Valid is false only when
// Errors is non-empty; warnings are advisory.
type Validation struct {
	Valid    bool     `json:"isValid"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// Stats counts structural elements of a post body.
type Stats struct {
	WordCount      int `json:"wordCount"`
	CharacterCount int `json:"characterCount"`
	ParagraphCount int `json:"paragraphCount"`
	HeadingCount   int `json:"headingCount"`
	LinkCount      int `json:"linkCount"`
	ImageCount     int `json:"imageCount"`
	ReadingTime    int `json:"readingTime"`
}

// Validate runs the SEO checklist against post content.
func Validate(body string) Validation {
	result := Validation{Warnings: []string{}, Errors: []string{}}

	if strings.TrimSpace(body) == "" {
		result.Errors = append(result.Errors, "Conteúdo está vazio")
		return result
	}

	if h1 := len(h1Pattern.FindAllString(body, -1)); h1 > 1 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Múltiplos H1 encontrados (%d). Recomenda-se apenas um H1 por página.", h1))
	}

	if !h2Pattern.MatchString(body) {
		result.Warnings = append(result.Warnings, "Nenhum H2 encontrado. Considere adicionar subtítulos para melhor estrutura.")
	}

	for i, paragraph := range paragraphSplit.Split(body, -1) {
		if words := WordCount(paragraph); words > maxParagraphWords {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Parágrafo %d é muito longo (%d palavras). Considere dividir.", i+1, words))
		}
	}

	if missing := imagesWithoutAlt(body); missing > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("%d imagem(ns) sem texto alternativo (alt).", missing))
	}

	if utf8.RuneCountInString(PlainText(body)) < minContentChars {
		result.Warnings = append(result.Warnings, "Conteúdo curto. Para melhor SEO, considere expandir para pelo menos 300 palavras.")
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func imagesWithoutAlt(body string) int {
	missing := 0
	for _, img := range imgPattern.FindAllString(body, -1) {
		if !strings.Contains(img, "alt=") {
			missing++
		}
	}
	return missing
}

// ContentStats counts words, characters and markup elements of a post body.
func ContentStats(body string) Stats {
	if body == "" {
		return Stats{}
	}

	text := PlainText(body)
	words := len(strings.Fields(text))

	return Stats{
		WordCount:      words,
		CharacterCount: utf8.RuneCountInString(text),
		ParagraphCount: len(paragraphPattern.FindAllString(body, -1)),
		HeadingCount:   len(headingPattern.FindAllString(body, -1)),
		LinkCount:      len(linkPattern.FindAllString(body, -1)),
		ImageCount:     len(imgPattern.FindAllString(body, -1)),
		ReadingTime:    minutesFor(words),
	}
}
