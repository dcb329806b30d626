// Package devseed loads a small working data set for local development:
// one admin account, the standard category taxonomy, and a couple of
// published articles. It never runs outside dev mode.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dataetica/dataetica-api/internal/data"
	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	"github.com/dataetica/dataetica-api/internal/domain/model"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
	"github.com/dataetica/dataetica-api/internal/service"
)

const (
	adminEmail      = "admin@dataetica.local"
	defaultPassword = "cambiame-ahora"
)

type seedCategory struct {
	name        string
	description string
}

var categories = []seedCategory{
	{"Gobernanza de IA", "Marcos regulatorios y supervisión de sistemas de inteligencia artificial."},
	{"Privacidad", "Protección de datos personales y minimización de recolección."},
	{"Sesgo Algorítmico", "Detección y mitigación de sesgos en modelos automatizados."},
	{"Transparencia", "Explicabilidad y derecho a entender las decisiones automatizadas."},
	{"IA en Salud", "Uso responsable de modelos clínicos y diagnósticos asistidos."},
	{"Trabajo y Automatización", "Impacto de la automatización en el empleo y los derechos laborales."},
}

// Run seeds development data. Every step is idempotent so restarting
// the server does not duplicate rows.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "devseed")

	users := data.NewUserRepo(db)
	cats := data.NewCategoryRepo(db)
	posts := data.NewPostRepo(db)

	admin, err := ensureAdmin(ctx, users, logger)
	if err != nil {
		return err
	}

	slugs, err := ensureCategories(ctx, cats, logger)
	if err != nil {
		return err
	}

	if err := ensurePosts(ctx, posts, admin, slugs, logger); err != nil {
		return err
	}

	logger.InfoContext(ctx, "dev data ready", "admin_email", adminEmail)
	return nil
}

func ensureAdmin(ctx context.Context, users *data.UserRepo, logger *slog.Logger) (model.User, error) {
	existing, err := users.GetByEmail(ctx, adminEmail)
	if err == nil {
		return existing, nil
	}
	if !apperrors.IsNotFound(err) {
		return model.User{}, fmt.Errorf("look up admin: %w", err)
	}

	password := os.Getenv("DEV_ADMIN_PASSWORD")
	if password == "" {
		password = defaultPassword
	}
	hash, err := service.HashPassword(password)
	if err != nil {
		return model.User{}, fmt.Errorf("hash admin password: %w", err)
	}

	admin, err := users.Create(ctx, model.User{
		Email:        adminEmail,
		Name:         "Administración DataÉtica",
		PasswordHash: hash,
		Role:         domainauth.RoleAdmin,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("create admin: %w", err)
	}

	logger.InfoContext(ctx, "created dev admin", "email", adminEmail)
	return admin, nil
}

// ensureCategories returns category IDs keyed by slug.
func ensureCategories(ctx context.Context, cats *data.CategoryRepo, logger *slog.Logger) (map[string]string, error) {
	ids := make(map[string]string, len(categories))
	for _, c := range categories {
		slug := model.Slugify(c.name)
		existing, err := cats.GetBySlug(ctx, slug)
		if err == nil {
			ids[slug] = existing.ID
			continue
		}
		if !apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("look up category %q: %w", slug, err)
		}

		desc := c.description
		created, err := cats.Create(ctx, c.name, slug, &desc)
		if err != nil {
			return nil, fmt.Errorf("create category %q: %w", c.name, err)
		}
		ids[slug] = created.ID
		logger.InfoContext(ctx, "created category", "slug", slug)
	}
	return ids, nil
}

func ensurePosts(
	ctx context.Context,
	posts *data.PostRepo,
	admin model.User,
	categoryIDs map[string]string,
	logger *slog.Logger,
) error {
	samples := []struct {
		title        string
		excerpt      string
		content      string
		categorySlug string
	}{
		{
			title:        "Qué exige la transparencia algorítmica en el sector público",
			excerpt:      "Las administraciones que deciden con algoritmos deben poder explicar cada resolución.",
			content:      "## El problema\n\nCuando un organismo público deniega una prestación con apoyo de un modelo, la persona afectada tiene derecho a una explicación.\n\n## Qué pedimos\n\n- Registro público de sistemas en uso\n- Evaluaciones de impacto previas al despliegue\n- Vías de recurso humanas",
			categorySlug: model.Slugify("Transparencia"),
		},
		{
			title:        "Sesgo en modelos de triaje: tres señales de alerta",
			excerpt:      "Cómo detectar que un modelo clínico trata peor a parte de la población.",
			content:      "## Señales\n\n1. Tasas de error desiguales entre grupos demográficos\n2. Datos de entrenamiento sin representación suficiente\n3. Variables proxy de origen socioeconómico\n\nAuditar antes de desplegar no es opcional.",
			categorySlug: model.Slugify("IA en Salud"),
		},
	}

	for _, s := range samples {
		slug := model.Slugify(s.title)
		if _, err := posts.GetBySlug(ctx, slug); err == nil {
			continue
		} else if !apperrors.IsNotFound(err) {
			return fmt.Errorf("look up post %q: %w", slug, err)
		}

		catID, ok := categoryIDs[s.categorySlug]
		if !ok {
			return fmt.Errorf("seed post %q references unknown category %q", slug, s.categorySlug)
		}

		now := time.Now().UTC()
		if _, err := posts.Create(ctx, data.CreateParams{
			Title:       s.title,
			Slug:        slug,
			Excerpt:     s.excerpt,
			Content:     s.content,
			Status:      model.StatusPublished,
			AuthorID:    admin.ID,
			PublishedAt: &now,
			CategoryIDs: []string{catID},
		}); err != nil {
			return fmt.Errorf("create post %q: %w", slug, err)
		}
		logger.InfoContext(ctx, "created post", "slug", slug)
	}
	return nil
}
