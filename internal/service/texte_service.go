package service

import (
	"context"
	"fmt"

	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/domain/repository"
)

type TexteService interface {
	GetAllTextes(ctx context.Context) ([]entity.Texte, error)
	GetTexteByID(ctx context.Context, id string) (*entity.Texte, error)
	DeleteTexte(ctx context.Context, id string) error
}

type texteService struct {
	texteRepo    repository.TexteRepository
	relationRepo repository.RelationRepository
	// cascadeRelations : si vrai, supprimer un texte supprime aussi ses
	// relations ; sinon la suppression est refusée tant qu'il est référencé
	// (politique par défaut, la plus sûre)
	cascadeRelations bool
}

func NewTexteService(texteRepo repository.TexteRepository, relationRepo repository.RelationRepository, cascadeRelations bool) TexteService {
	return &texteService{
		texteRepo:        texteRepo,
		relationRepo:     relationRepo,
		cascadeRelations: cascadeRelations,
	}
}

func (s *texteService) GetAllTextes(ctx context.Context) ([]entity.Texte, error) {
	return s.texteRepo.GetAll(ctx)
}

func (s *texteService) GetTexteByID(ctx context.Context, id string) (*entity.Texte, error) {
	texte, err := s.texteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if texte == nil {
		return nil, entity.ErrTexteNotFound
	}
	return texte, nil
}

func (s *texteService) DeleteTexte(ctx context.Context, id string) error {
	texte, err := s.texteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if texte == nil {
		return entity.ErrTexteNotFound
	}

	asSource, asTarget, err := s.relationRepo.CountForTexte(ctx, id)
	if err != nil {
		return fmt.Errorf("échec du comptage des relations: %w", err)
	}
	if asSource+asTarget > 0 {
		if !s.cascadeRelations {
			return entity.ErrTexteReferenced
		}
		if err := s.relationRepo.DeleteForTexte(ctx, id); err != nil {
			return fmt.Errorf("échec de la suppression des relations: %w", err)
		}
	}

	return s.texteRepo.Delete(ctx, id)
}
