package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"imersao-completa/internal/app"
	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"
	"imersao-completa/pkg/config"
	"imersao-completa/pkg/content"
	"imersao-completa/pkg/database"
	"imersao-completa/pkg/logger"
)

type seedCategory struct {
	name        string
	description string
	color       string
	icon        string
}

var categories = []seedCategory{
	{"Vestibular", "Preparação para vestibulares e ENEM", "#0ea5e9", "graduation-cap"},
	{"Redação", "Técnicas e modelos de redação", "#f97316", "pen"},
	{"Técnicas de Estudo", "Métodos para aprender melhor", "#22c55e", "brain"},
	{"Carreira", "Escolha de curso e mercado de trabalho", "#a855f7", "briefcase"},
}

var tags = []string{"ENEM", "Fuvest", "Cronograma", "Pomodoro", "Dicas"}

type seedPost struct {
	title    string
	excerpt  string
	body     string
	category string
	tags     []string
}

var posts = []seedPost{
	{
		title:    "Como montar um cronograma de estudos para o ENEM",
		excerpt:  "Um passo a passo para organizar a rotina até a prova.",
		body:     "<h2>Comece pelo diagnóstico</h2>\n<p>" + strings.Repeat("Liste as matérias e avalie seu nível em cada uma. ", 30) + "</p>\n<h2>Distribua as horas</h2>\n<p>" + strings.Repeat("Reserve mais tempo para os pontos fracos sem abandonar os fortes. ", 30) + "</p>",
		category: "Vestibular",
		tags:     []string{"ENEM", "Cronograma"},
	},
	{
		title:    "Estrutura da redação nota mil",
		excerpt:  "Introdução, desenvolvimento e conclusão com proposta de intervenção.",
		body:     "<h2>Introdução</h2>\n<p>" + strings.Repeat("Apresente o tema e a tese de forma clara e objetiva. ", 40) + "</p>",
		category: "Redação",
		tags:     []string{"ENEM", "Dicas"},
	},
	{
		title:    "Pomodoro na prática",
		excerpt:  "Blocos curtos de foco para render mais.",
		body:     "<h2>O método</h2>\n<p>" + strings.Repeat("Estude por vinte e cinco minutos e descanse cinco. ", 25) + "</p>",
		category: "Técnicas de Estudo",
		tags:     []string{"Pomodoro"},
	},
}

func main() {
	var (
		adminEmail    string
		adminPassword string
		adminName     string
	)
	flag.StringVar(&adminEmail, "admin-email", "admin@imersaocompleta.com.br", "Email of the admin account")
	flag.StringVar(&adminPassword, "admin-password", "admin123", "Password of the admin account")
	flag.StringVar(&adminName, "admin-name", "Equipe Imersão", "Display name of the admin account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	services := app.NewServices(cfg, log, db, nil, nil, nil)

	if err := seedDatabase(context.Background(), services, log, adminEmail, adminPassword, adminName); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, services *app.Services, log *logger.Logger, email, password, name string) error {
	session, err := services.Auth.SignUp(ctx, email, password, name)
	switch {
	case errors.Is(err, entity.ErrEmailTaken):
		log.Info("Admin %s already exists, signing in", email)
		session, err = services.Auth.SignIn(ctx, email, password)
		if err != nil {
			return fmt.Errorf("failed to sign in as existing admin: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to create admin: %w", err)
	default:
		log.Info("Created admin: %s", email)
	}

	adminID := session.User.ID
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleEditor} {
		if err := services.Auth.GrantRole(ctx, adminID, role); err != nil {
			return fmt.Errorf("failed to grant %s: %w", role, err)
		}
	}

	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		description, color, icon := c.description, c.color, c.icon
		category, err := services.Categories.Create(ctx, usecase.CreateCategoryInput{
			Name:        c.name,
			Description: &description,
			Color:       &color,
			Icon:        &icon,
		})
		if errors.Is(err, entity.ErrDuplicate) {
			existing, err := services.Categories.GetBySlug(ctx, content.Slug(c.name))
			if err != nil {
				return fmt.Errorf("failed to load category %s: %w", c.name, err)
			}
			log.Info("Category %s already exists, skipping", c.name)
			categoryIDs[c.name] = existing.ID
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create category %s: %w", c.name, err)
		}
		log.Info("Created category: %s", category.Slug)
		categoryIDs[c.name] = category.ID
	}

	tagIDs := make(map[string]string, len(tags))
	for _, name := range tags {
		tag, err := services.Tags.Create(ctx, usecase.CreateTagInput{Name: name})
		if errors.Is(err, entity.ErrDuplicate) {
			existing, err := services.Tags.GetBySlug(ctx, content.Slug(name))
			if err != nil {
				return fmt.Errorf("failed to load tag %s: %w", name, err)
			}
			tagIDs[name] = existing.ID
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create tag %s: %w", name, err)
		}
		tagIDs[name] = tag.ID
	}

	for _, p := range posts {
		categoryID := categoryIDs[p.category]
		excerpt, body := p.excerpt, p.body
		ids := make([]string, 0, len(p.tags))
		for _, t := range p.tags {
			ids = append(ids, tagIDs[t])
		}

		post, err := services.Posts.Create(ctx, adminID, usecase.CreatePostInput{
			Title:      p.title,
			Excerpt:    &excerpt,
			Content:    &body,
			CategoryID: &categoryID,
			Status:     entity.StatusPublished,
			TagIDs:     ids,
		})
		if errors.Is(err, entity.ErrDuplicate) {
			log.Info("Post %q already exists, skipping", p.title)
			continue
		}
		if err != nil {
			log.Error("Failed to create post %q: %v", p.title, err)
			continue
		}
		log.Info("Created post: %s (%d min)", post.Slug, post.ReadingTime)
	}

	return nil
}
