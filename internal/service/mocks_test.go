package service

import (
	"context"
	"sort"
	"time"

	"github.com/legicam/backend/internal/domain/entity"
)

// Mocks en mémoire des dépôts, pour tester les services sans base vivante

type mockTexteRepo struct {
	textes   map[string]*entity.Texte
	sections map[string][]entity.Section
	articles map[string][]entity.Article

	articleHits   []entity.Article
	articleScores []float64
	texteHits     []entity.Texte
	texteScores   []float64

	replaceCalls int
	replaceErr   error
	deleted      []string
}

func newMockTexteRepo() *mockTexteRepo {
	return &mockTexteRepo{
		textes:   map[string]*entity.Texte{},
		sections: map[string][]entity.Section{},
		articles: map[string][]entity.Article{},
	}
}

func (m *mockTexteRepo) GetAll(ctx context.Context) ([]entity.Texte, error) {
	var out []entity.Texte
	for _, t := range m.textes {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockTexteRepo) GetByID(ctx context.Context, id string) (*entity.Texte, error) {
	return m.textes[id], nil
}

func (m *mockTexteRepo) Delete(ctx context.Context, id string) error {
	delete(m.textes, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockTexteRepo) GetSections(ctx context.Context, texteID string) ([]entity.Section, error) {
	return m.sections[texteID], nil
}

func (m *mockTexteRepo) GetArticles(ctx context.Context, texteID string) ([]entity.Article, error) {
	return m.articles[texteID], nil
}

func (m *mockTexteRepo) ReplaceStructure(ctx context.Context, texte *entity.Texte, sections []entity.Section, articles []entity.Article) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaceCalls++
	m.textes[texte.ID] = texte
	m.sections[texte.ID] = sections
	m.articles[texte.ID] = articles
	return nil
}

func (m *mockTexteRepo) SearchArticles(ctx context.Context, q string, limit int) ([]entity.Article, []float64, error) {
	return m.articleHits, m.articleScores, nil
}

func (m *mockTexteRepo) SearchTextes(ctx context.Context, q string, limit int) ([]entity.Texte, []float64, error) {
	return m.texteHits, m.texteScores, nil
}

type mockRelationRepo struct {
	rels []entity.TexteRelation
}

func (m *mockRelationRepo) Create(ctx context.Context, rel *entity.TexteRelation) error {
	rel.CreatedAt = time.Now()
	m.rels = append(m.rels, *rel)
	return nil
}

func (m *mockRelationRepo) Delete(ctx context.Context, id string) error {
	for i, r := range m.rels {
		if r.ID == id {
			m.rels = append(m.rels[:i], m.rels[i+1:]...)
			return nil
		}
	}
	return entity.ErrRelationNotFound
}

func (m *mockRelationRepo) Exists(ctx context.Context, sourceID, cibleID string, t entity.TypeRelation) (bool, error) {
	for _, r := range m.rels {
		if r.SourceID == sourceID && r.CibleID == cibleID && r.Type == t {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRelationRepo) GetBySource(ctx context.Context, texteID string) ([]entity.TexteRelation, error) {
	var out []entity.TexteRelation
	for _, r := range m.rels {
		if r.SourceID == texteID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRelationRepo) GetByTarget(ctx context.Context, texteID string) ([]entity.TexteRelation, error) {
	var out []entity.TexteRelation
	for _, r := range m.rels {
		if r.CibleID == texteID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRelationRepo) CountForTexte(ctx context.Context, texteID string) (int, int, error) {
	asSource, asTarget := 0, 0
	for _, r := range m.rels {
		if r.SourceID == texteID {
			asSource++
		}
		if r.CibleID == texteID {
			asTarget++
		}
	}
	return asSource, asTarget, nil
}

func (m *mockRelationRepo) DeleteForTexte(ctx context.Context, texteID string) error {
	var reste []entity.TexteRelation
	for _, r := range m.rels {
		if r.SourceID != texteID && r.CibleID != texteID {
			reste = append(reste, r)
		}
	}
	m.rels = reste
	return nil
}
