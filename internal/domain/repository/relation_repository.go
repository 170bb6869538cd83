package repository

import (
	"context"

	"github.com/legicam/backend/internal/domain/entity"
)

type RelationRepository interface {
	Create(ctx context.Context, rel *entity.TexteRelation) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, sourceID, cibleID string, t entity.TypeRelation) (bool, error)

	// GetBySource / GetByTarget retournent les arêtes avec les titres des
	// deux textes résolus par jointure
	GetBySource(ctx context.Context, texteID string) ([]entity.TexteRelation, error)
	GetByTarget(ctx context.Context, texteID string) ([]entity.TexteRelation, error)

	CountForTexte(ctx context.Context, texteID string) (asSource int, asTarget int, err error)
	DeleteForTexte(ctx context.Context, texteID string) error
}
