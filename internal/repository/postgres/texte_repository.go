package postgres

import (
	"context"
	"database/sql"

	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/domain/repository"
)

type texteRepo struct {
	db *sql.DB
}

func NewTexteRepository(db *sql.DB) repository.TexteRepository {
	return &texteRepo{db: db}
}

func (r *texteRepo) GetAll(ctx context.Context) ([]entity.Texte, error) {
	query := `SELECT id, titre, nature, statut, COALESCE(description,''), COALESCE(source_objet,''), created_at FROM textes ORDER BY titre`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var textes []entity.Texte
	for rows.Next() {
		var t entity.Texte
		if err := rows.Scan(&t.ID, &t.Titre, &t.Nature, &t.Statut, &t.Description, &t.SourceObjet, &t.CreatedAt); err != nil {
			return nil, err
		}
		textes = append(textes, t)
	}
	return textes, rows.Err()
}

func (r *texteRepo) GetByID(ctx context.Context, id string) (*entity.Texte, error) {
	query := `SELECT id, titre, nature, statut, COALESCE(description,''), COALESCE(source_objet,''), created_at FROM textes WHERE id = $1`
	t := &entity.Texte{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Titre, &t.Nature, &t.Statut, &t.Description, &t.SourceObjet, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return t, err
}

func (r *texteRepo) Delete(ctx context.Context, id string) error {
	// Les sections et articles suivent par ON DELETE CASCADE ;
	// les relations sont protégées par ON DELETE RESTRICT
	_, err := r.db.ExecContext(ctx, `DELETE FROM textes WHERE id = $1`, id)
	return err
}

func (r *texteRepo) GetSections(ctx context.Context, texteID string) ([]entity.Section, error) {
	query := `SELECT id, texte_id, titre, parent_id, position FROM sections WHERE texte_id = $1 ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, texteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []entity.Section
	for rows.Next() {
		var s entity.Section
		if err := rows.Scan(&s.ID, &s.TexteID, &s.Titre, &s.ParentID, &s.Position); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *texteRepo) GetArticles(ctx context.Context, texteID string) ([]entity.Article, error) {
	query := `SELECT id, texte_id, numero, contenu, ordre, statut, section_id, created_at FROM articles WHERE texte_id = $1 ORDER BY ordre`
	rows, err := r.db.QueryContext(ctx, query, texteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.TexteID, &a.Numero, &a.Contenu, &a.Ordre, &a.Statut, &a.SectionID, &a.CreatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// ReplaceStructure remplace atomiquement le texte et toute sa structure.
// Rejouer la même charge utile reproduit exactement les mêmes lignes :
// l'ingestion est idempotente par construction.
func (r *texteRepo) ReplaceStructure(ctx context.Context, texte *entity.Texte, sections []entity.Section, articles []entity.Article) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := `INSERT INTO textes (id, titre, nature, statut, description, source_objet)
	           VALUES ($1, $2, $3, $4, $5, $6)
	           ON CONFLICT (id)
	           DO UPDATE SET
	             titre = EXCLUDED.titre,
	             nature = EXCLUDED.nature,
	             statut = EXCLUDED.statut,
	             description = EXCLUDED.description,
	             source_objet = EXCLUDED.source_objet
	           RETURNING created_at`
	if err := tx.QueryRowContext(ctx, upsert, texte.ID, texte.Titre, texte.Nature, texte.Statut, texte.Description, texte.SourceObjet).Scan(&texte.CreatedAt); err != nil {
		return err
	}

	// Purge de l'ancienne structure (articles d'abord : FK vers sections)
	if _, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE texte_id = $1`, texte.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE texte_id = $1`, texte.ID); err != nil {
		return err
	}

	stmtSection, err := tx.PrepareContext(ctx, `INSERT INTO sections (id, texte_id, titre, parent_id, position) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return err
	}
	defer stmtSection.Close()
	for _, s := range sections {
		if _, err := stmtSection.ExecContext(ctx, s.ID, texte.ID, s.Titre, s.ParentID, s.Position); err != nil {
			return err
		}
	}

	stmtArticle, err := tx.PrepareContext(ctx, `INSERT INTO articles (id, texte_id, numero, contenu, ordre, statut, section_id) VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return err
	}
	defer stmtArticle.Close()
	for _, a := range articles {
		if _, err := stmtArticle.ExecContext(ctx, a.ID, texte.ID, a.Numero, a.Contenu, a.Ordre, a.Statut, a.SectionID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ========================================
// Recherche plein texte (Postgres FTS)
// ========================================

func (r *texteRepo) SearchArticles(ctx context.Context, q string, limit int) ([]entity.Article, []float64, error) {
	query := `
		SELECT a.id, a.texte_id, a.numero, a.contenu, a.ordre, a.statut, a.section_id, a.created_at,
		       t.titre,
		       ts_rank(to_tsvector('french', a.contenu), plainto_tsquery('french', $1)) AS rang
		FROM articles a
		JOIN textes t ON t.id = a.texte_id
		WHERE to_tsvector('french', a.contenu) @@ plainto_tsquery('french', $1)
		ORDER BY rang DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, q, limit)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var articles []entity.Article
	var scores []float64
	for rows.Next() {
		var a entity.Article
		var score float64
		if err := rows.Scan(&a.ID, &a.TexteID, &a.Numero, &a.Contenu, &a.Ordre, &a.Statut, &a.SectionID, &a.CreatedAt, &a.TexteTitre, &score); err != nil {
			return nil, nil, err
		}
		articles = append(articles, a)
		scores = append(scores, score)
	}
	return articles, scores, rows.Err()
}

func (r *texteRepo) SearchTextes(ctx context.Context, q string, limit int) ([]entity.Texte, []float64, error) {
	query := `
		SELECT id, titre, nature, statut, COALESCE(description,''), COALESCE(source_objet,''), created_at,
		       ts_rank(to_tsvector('french', titre), plainto_tsquery('french', $1)) AS rang
		FROM textes
		WHERE to_tsvector('french', titre) @@ plainto_tsquery('french', $1)
		ORDER BY rang DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, q, limit)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var textes []entity.Texte
	var scores []float64
	for rows.Next() {
		var t entity.Texte
		var score float64
		if err := rows.Scan(&t.ID, &t.Titre, &t.Nature, &t.Statut, &t.Description, &t.SourceObjet, &t.CreatedAt, &score); err != nil {
			return nil, nil, err
		}
		textes = append(textes, t)
		scores = append(scores, score)
	}
	return textes, scores, rows.Err()
}
