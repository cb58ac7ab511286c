package content

import (
	"regexp"
	"strings"
)

const wordsPerMinute = 200

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// PlainText drops markup and collapses whitespace.
func PlainText(html string) string {
	return strings.Join(strings.Fields(htmlTag.ReplaceAllString(html, "")), " ")
}

// WordCount counts whitespace-separated words after stripping markup.
func WordCount(html string) int {
	return len(strings.Fields(htmlTag.ReplaceAllString(html, "")))
}

// ReadingTime returns whole minutes at 200 words per minute, never below 1.
func ReadingTime(html string) int {
	return minutesFor(WordCount(html))
}

func minutesFor(words int) int {
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
