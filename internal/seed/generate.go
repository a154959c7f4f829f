package seed

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"polyglot/internal/language"
	"polyglot/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	titles = []string{
		"Getting Started with TypeScript in 2024",
		"A Complete Guide to React Hooks",
		"Building Scalable REST APIs",
		"Mastering CSS Grid Layout",
		"JavaScript Performance Tips",
		"Database Design Best Practices",
		"Modern Authentication Methods",
		"Web Performance Optimization",
		"Unit Testing Strategies",
		"Introduction to DevOps",
		"Cloud Architecture Patterns",
		"Microservices vs Monoliths",
		"GraphQL Fundamentals",
		"State Management in React",
		"Web Security Guidelines",
		"API Design Principles",
		"Effective Code Reviews",
		"Debugging Like a Pro",
		"CI/CD Pipeline Setup",
		"Monitoring and Logging",
	}

	headings = []string{
		"Introduction", "Getting Started", "Key Concepts", "Implementation", "Best Practices",
		"Common Pitfalls", "Advanced Topics", "Conclusion", "Next Steps", "Summary",
	}

	listItems = []string{
		"Keep functions small and focused",
		"Write tests before shipping",
		"Measure before optimizing",
		"Prefer composition over inheritance",
		"Document public interfaces",
		"Automate repetitive tasks",
		"Review code with a fresh pair of eyes",
		"Handle errors explicitly",
		"Log with enough context to debug",
		"Version your APIs",
	}

	postStatuses        = []string{"published", "published", "published", "draft", "archived"}
	translationStatuses = []string{"complete", "complete", "partial", "machine"}
	blockKinds          = []string{"paragraph", "paragraph", "heading", "list"}

	// Whole-phrase replacements per language. Titles with no hit get a [LANG] prefix.
	titlePhrases = map[string][][2]string{
		"fr": {{"Getting Started", "Commencer"}, {"A Complete Guide", "Un guide complet"}, {"Best Practices", "Bonnes pratiques"}, {"Introduction to", "Introduction à"}, {"Building", "Construire"}, {"Mastering", "Maîtriser"}},
		"de": {{"Getting Started", "Erste Schritte"}, {"A Complete Guide", "Ein vollständiger Leitfaden"}, {"Best Practices", "Bewährte Methoden"}, {"Introduction to", "Einführung in"}, {"Building", "Aufbau"}, {"Mastering", "Meistern"}},
		"es": {{"Getting Started", "Primeros pasos"}, {"A Complete Guide", "Una guía completa"}, {"Best Practices", "Mejores prácticas"}, {"Introduction to", "Introducción a"}, {"Building", "Construyendo"}, {"Mastering", "Dominando"}},
		"it": {{"Getting Started", "Iniziare"}, {"A Complete Guide", "Una guida completa"}, {"Best Practices", "Migliori pratiche"}, {"Introduction to", "Introduzione a"}, {"Building", "Costruire"}},
		"cs": {{"Getting Started", "Začínáme"}, {"A Complete Guide", "Kompletní průvodce"}, {"Best Practices", "Osvědčené postupy"}, {"Introduction to", "Úvod do"}},
		"pl": {{"Getting Started", "Pierwsze kroki"}, {"A Complete Guide", "Kompletny przewodnik"}, {"Best Practices", "Najlepsze praktyki"}, {"Introduction to", "Wprowadzenie do"}},
		"jp": {{"Getting Started", "はじめに"}, {"A Complete Guide", "完全ガイド"}, {"Best Practices", "ベストプラクティス"}, {"Introduction to", "入門"}},
	}

	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
)

const excerptLength = 150

// PostBundle is one generated post with every row that hangs off it.
type PostBundle struct {
	Post               models.Post
	Content            models.Content
	Group              models.TranslationGroup
	Entries            []models.TranslationEntry
	TranslatedContents []models.TranslatedContent
}

// Generator builds realistic multilingual posts. A fixed seed gives a fixed corpus.
type Generator struct {
	faker        *gofakeit.Faker
	markdown     goldmark.Markdown
	bodyPolicy   *bluemonday.Policy
	stripPolicy  *bluemonday.Policy
	now          time.Time
	fallbackRate float64
}

// NewGenerator creates a Generator. seed 0 picks a random seed.
func NewGenerator(seed int64, now time.Time, fallbackRate float64) *Generator {
	if now.IsZero() {
		now = time.Now()
	}
	return &Generator{
		faker:        gofakeit.New(seed),
		markdown:     goldmark.New(),
		bodyPolicy:   bodyPolicy(),
		stripPolicy:  bluemonday.StrictPolicy(),
		now:          now.UTC(),
		fallbackRate: fallbackRate,
	}
}

// bodyPolicy keeps only the block elements the generator emits.
func bodyPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "h2", "h3", "ul", "li")
	return p
}

// Post builds the bundle for post id. The group's default language is always
// the site default and always carries a complete entry.
func (g *Generator) Post(id uint) (PostBundle, error) {
	title := titles[int(id)%len(titles)]
	slug := fmt.Sprintf("%s-%d", Slugify(title), id)
	createdAt := g.pastDate()
	updatedAt := g.pastDate()

	html, err := g.body()
	if err != nil {
		return PostBundle{}, fmt.Errorf("render body for post %d: %w", id, err)
	}
	excerpt := g.excerpt(html)

	b := PostBundle{
		Post: models.Post{
			ID:                 id,
			Slug:               slug,
			AuthorID:           uint(g.faker.Number(1, 10)),
			Status:             models.PostStatus(g.faker.RandomString(postStatuses)),
			CreatedAt:          createdAt,
			UpdatedAt:          updatedAt,
			ContentReferenceID: g.faker.UUID(),
			TranslationGroupID: g.faker.UUID(),
			CategoryIDs:        []int64{int64(g.faker.Number(1, 10)), int64(g.faker.Number(1, 10))},
		},
		Content: models.Content{
			HTMLBody:       html,
			Excerpt:        &excerpt,
			WordCount:      WordCount(g.stripPolicy.Sanitize(html)),
			LastModified:   updatedAt,
			RevisionNumber: g.faker.Number(1, 5),
		},
	}
	b.Content.ReferenceID = b.Post.ContentReferenceID
	if g.faker.Float64Range(0, 1) > 0.3 {
		imageID := uint(g.faker.Number(1, 50))
		b.Post.FeaturedImageID = &imageID
	}

	b.Group = models.TranslationGroup{GroupID: b.Post.TranslationGroupID, DefaultLanguage: language.Default}

	for _, lang := range g.languages() {
		entry, content := g.translation(id, lang, title, slug, html)
		entry.GroupID = b.Group.GroupID
		b.Entries = append(b.Entries, entry)
		b.TranslatedContents = append(b.TranslatedContents, content)
	}
	return b, nil
}

// languages returns the default language followed by 2-5 shuffled others.
func (g *Generator) languages() []string {
	others := make([]string, 0, len(language.Codes()))
	for _, code := range language.Codes() {
		if code != language.Default {
			others = append(others, code)
		}
	}
	g.faker.ShuffleStrings(others)
	return append([]string{language.Default}, others[:g.faker.Number(2, 5)]...)
}

func (g *Generator) translation(id uint, lang, title, slug, html string) (models.TranslationEntry, models.TranslatedContent) {
	translated := TranslateTitle(title, lang)
	meta := "Meta description for " + translated

	entry := models.TranslationEntry{
		Language:          lang,
		PostID:            id,
		Title:             translated,
		MetaDescription:   &meta,
		TranslationStatus: models.TranslationStatusComplete,
	}
	content := models.TranslatedContent{PostID: id, Language: lang, TranslatedHTML: html}

	if lang == language.Default {
		return entry, content
	}

	localeSlug := lang + "-" + slug
	translator := fmt.Sprintf("translator-%d", g.faker.Number(1, 5))
	translatedAt := g.pastDate()
	entry.LocaleSpecificSlug = &localeSlug
	entry.TranslatedBy = &translator
	entry.TranslatedAt = &translatedAt
	entry.TranslationStatus = models.TranslationStatus(g.faker.RandomString(translationStatuses))

	if g.fallbackRate > 0 && g.faker.Float64Range(0, 1) < g.fallbackRate {
		content.UsesFallback = true
		return entry, content
	}

	score := float64(g.faker.Number(70, 100)) / 100
	content.TranslatedHTML = TranslateHTML(html, lang)
	content.TranslationQualityScore = &score
	return entry, content
}

// body renders 4-8 markdown blocks and sanitizes the result down to the
// allowed block elements.
func (g *Generator) body() (string, error) {
	blocks := make([]string, 0, 8)
	for i, n := 0, g.faker.Number(4, 8); i < n; i++ {
		switch g.faker.RandomString(blockKinds) {
		case "heading":
			level := strings.Repeat("#", g.faker.Number(2, 3))
			blocks = append(blocks, level+" "+g.faker.RandomString(headings))
		case "list":
			items := make([]string, 0, 5)
			for j, m := 0, g.faker.Number(3, 5); j < m; j++ {
				items = append(items, "- "+g.faker.RandomString(listItems))
			}
			blocks = append(blocks, strings.Join(items, "\n"))
		default:
			sentences := make([]string, 0, 5)
			for j, m := 0, g.faker.Number(3, 5); j < m; j++ {
				sentences = append(sentences, g.faker.LoremIpsumSentence(g.faker.Number(6, 12)))
			}
			blocks = append(blocks, strings.Join(sentences, " "))
		}
	}

	var buf bytes.Buffer
	if err := g.markdown.Convert([]byte(strings.Join(blocks, "\n\n")), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return strings.TrimSpace(g.bodyPolicy.Sanitize(buf.String())), nil
}

func (g *Generator) excerpt(html string) string {
	text := strings.Join(strings.Fields(g.stripPolicy.Sanitize(html)), " ")
	runes := []rune(text)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + "..."
}

func (g *Generator) pastDate() time.Time {
	return g.faker.DateRange(g.now.AddDate(-1, 0, 0), g.now).UTC().Truncate(time.Second)
}

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	return strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// TranslateTitle applies the language's phrase table to title. When nothing
// matches, the title is marked with the upper-cased language code instead.
func TranslateTitle(title, lang string) string {
	if lang == language.Default {
		return title
	}
	out := title
	for _, pair := range titlePhrases[lang] {
		out = strings.ReplaceAll(out, pair[0], pair[1])
	}
	if out == title {
		return "[" + strings.ToUpper(lang) + "] " + title
	}
	return out
}

// TranslateHTML marks every text block with the language code so mock
// translations are visibly distinct from the source HTML.
func TranslateHTML(html, lang string) string {
	tag := "[" + strings.ToUpper(lang) + "] "
	return strings.NewReplacer(
		"<p>", "<p>"+tag,
		"<h2>", "<h2>"+tag,
		"<h3>", "<h3>"+tag,
		"<li>", "<li>"+tag,
	).Replace(html)
}
