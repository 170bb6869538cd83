package repository

import (
	"context"

	"github.com/legicam/backend/internal/domain/entity"
)

type TexteRepository interface {
	// Textes
	GetAll(ctx context.Context) ([]entity.Texte, error)
	GetByID(ctx context.Context, id string) (*entity.Texte, error)
	Delete(ctx context.Context, id string) error

	// Structure (sections + articles d'un texte)
	GetSections(ctx context.Context, texteID string) ([]entity.Section, error)
	GetArticles(ctx context.Context, texteID string) ([]entity.Article, error)

	// ReplaceStructure écrit le texte et la totalité de sa structure dans une
	// seule transaction : jamais d'arbre partiel observable.
	ReplaceStructure(ctx context.Context, texte *entity.Texte, sections []entity.Section, articles []entity.Article) error

	// Recherche plein texte (scores de pertinence fournis par le moteur amont)
	SearchArticles(ctx context.Context, q string, limit int) ([]entity.Article, []float64, error)
	SearchTextes(ctx context.Context, q string, limit int) ([]entity.Texte, []float64, error)
}
