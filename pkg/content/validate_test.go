package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Empty(t *testing.T) {
	result := Validate("   ")

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Conteúdo está vazio"}, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_WellFormedArticle(t *testing.T) {
	body := "<h1>Guia</h1><h2>Introdução</h2><p>" + words(120) + "</p>" +
		`<img src="a.png" alt="Diagrama">`

	result := Validate(body)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_ImageWithoutAlt(t *testing.T) {
	body := "<h2>Seção</h2><p>" + words(100) + `</p><img src="a.png"><img src="b.png" alt="b">`

	result := Validate(body)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"1 imagem(ns) sem texto alternativo (alt)."}, result.Errors)
}

func TestValidate_Warnings(t *testing.T) {
	body := "# Um\n\n# Dois\n\n" + words(301)

	result := Validate(body)

	assert.True(t, result.Valid)
	assert.Contains(t, result.Warnings, "Múltiplos H1 encontrados (2). Recomenda-se apenas um H1 por página.")
	assert.Contains(t, result.Warnings, "Nenhum H2 encontrado. Considere adicionar subtítulos para melhor estrutura.")
	assert.Contains(t, result.Warnings, "Parágrafo 3 é muito longo (301 palavras). Considere dividir.")
	assert.NotContains(t, result.Warnings, "Conteúdo curto. Para melhor SEO, considere expandir para pelo menos 300 palavras.")
}

func TestValidate_ShortContent(t *testing.T) {
	result := Validate("<h2>Oi</h2><p>Texto curto.</p>")

	assert.True(t, result.Valid)
	assert.Equal(t, []string{"Conteúdo curto. Para melhor SEO, considere expandir para pelo menos 300 palavras."}, result.Warnings)
}

func TestContentStats(t *testing.T) {
	body := strings.Join([]string{
		"<h1>Título</h1>",
		"<h2>Parte</h2>",
		`<p>Leia <a href="/a">isto</a> agora</p>`,
		`<p><img src="x.png" alt="x"></p>`,
		"## Markdown heading",
	}, "\n")

	stats := ContentStats(body)

	assert.Equal(t, 3, stats.HeadingCount)
	assert.Equal(t, 1, stats.LinkCount)
	assert.Equal(t, 1, stats.ImageCount)
	assert.Equal(t, 2, stats.ParagraphCount)
	assert.Equal(t, 8, stats.WordCount)
	assert.Equal(t, 1, stats.ReadingTime)
}

func TestContentStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ContentStats(""))
}
