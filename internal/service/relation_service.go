package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/domain/repository"
)

type RelationService interface {
	AddRelation(ctx context.Context, sourceID, cibleID string, t entity.TypeRelation, note string) (*entity.TexteRelation, error)
	RemoveRelation(ctx context.Context, id string) error
	GetRelations(ctx context.Context, texteID string) (*entity.RelationBundle, error)
}

type relationService struct {
	texteRepo    repository.TexteRepository
	relationRepo repository.RelationRepository
}

func NewRelationService(texteRepo repository.TexteRepository, relationRepo repository.RelationRepository) RelationService {
	return &relationService{
		texteRepo:    texteRepo,
		relationRepo: relationRepo,
	}
}

func (s *relationService) AddRelation(ctx context.Context, sourceID, cibleID string, t entity.TypeRelation, note string) (*entity.TexteRelation, error) {
	if !t.IsValid() {
		return nil, entity.ErrInvalidRelationType
	}
	if sourceID == cibleID {
		return nil, entity.ErrSelfRelation
	}

	for _, id := range []string{sourceID, cibleID} {
		texte, err := s.texteRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if texte == nil {
			return nil, entity.ErrTexteNotFound
		}
	}

	exists, err := s.relationRepo.Exists(ctx, sourceID, cibleID, t)
	if err != nil {
		return nil, fmt.Errorf("échec de la vérification d'unicité: %w", err)
	}
	if exists {
		return nil, entity.ErrDuplicateRelation
	}

	rel := &entity.TexteRelation{
		ID:        uuid.New().String(),
		SourceID:  sourceID,
		CibleID:   cibleID,
		Type:      t,
		Note:      note,
		CreatedAt: time.Now(),
	}
	if err := s.relationRepo.Create(ctx, rel); err != nil {
		return nil, err
	}
	return rel, nil
}

func (s *relationService) RemoveRelation(ctx context.Context, id string) error {
	return s.relationRepo.Delete(ctx, id)
}

// GetRelations construit la vue bidirectionnelle d'un texte. Chaque arête est
// stockée une seule fois ; côté cible elle est reclassée sous l'étiquette
// inverse de son type (ABROGE stockée apparaît en "abrogePar").
func (s *relationService) GetRelations(ctx context.Context, texteID string) (*entity.RelationBundle, error) {
	texte, err := s.texteRepo.GetByID(ctx, texteID)
	if err != nil {
		return nil, err
	}
	if texte == nil {
		return nil, entity.ErrTexteNotFound
	}

	bundle := entity.NewRelationBundle()

	sortantes, err := s.relationRepo.GetBySource(ctx, texteID)
	if err != nil {
		return nil, err
	}
	for _, rel := range sortantes {
		cle := rel.Type.ForwardKey()
		bundle.Relations[cle] = append(bundle.Relations[cle], rel)
	}

	entrantes, err := s.relationRepo.GetByTarget(ctx, texteID)
	if err != nil {
		return nil, err
	}
	for _, rel := range entrantes {
		cle := rel.Type.InverseKey()
		bundle.Relations[cle] = append(bundle.Relations[cle], rel)
	}

	bundle.Counts = entity.RelationCounts{
		AsSource: len(sortantes),
		AsTarget: len(entrantes),
		Total:    len(sortantes) + len(entrantes),
	}
	return bundle, nil
}
