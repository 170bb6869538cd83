package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/legicam/backend/internal/domain/entity"
	"github.com/legicam/backend/internal/domain/repository"
)

type relationRepo struct {
	db *sql.DB
}

func NewRelationRepository(db *sql.DB) repository.RelationRepository {
	return &relationRepo{db: db}
}

func (r *relationRepo) Create(ctx context.Context, rel *entity.TexteRelation) error {
	query := `INSERT INTO texte_relations (id, source_id, cible_id, type, note) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, rel.ID, rel.SourceID, rel.CibleID, rel.Type, rel.Note).Scan(&rel.CreatedAt)
	if err != nil {
		// Contrainte UNIQUE (source_id, cible_id, type) : le service a déjà
		// vérifié, mais deux requêtes concurrentes peuvent se croiser
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return entity.ErrDuplicateRelation
		}
		return err
	}
	return nil
}

func (r *relationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM texte_relations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrRelationNotFound
	}
	return nil
}

func (r *relationRepo) Exists(ctx context.Context, sourceID, cibleID string, t entity.TypeRelation) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM texte_relations WHERE source_id = $1 AND cible_id = $2 AND type = $3)`
	err := r.db.QueryRowContext(ctx, query, sourceID, cibleID, t).Scan(&exists)
	return exists, err
}

func (r *relationRepo) GetBySource(ctx context.Context, texteID string) ([]entity.TexteRelation, error) {
	query := `SELECT r.id, r.source_id, r.cible_id, r.type, COALESCE(r.note,''), r.created_at, s.titre, c.titre
	          FROM texte_relations r
	          JOIN textes s ON s.id = r.source_id
	          JOIN textes c ON c.id = r.cible_id
	          WHERE r.source_id = $1
	          ORDER BY r.created_at`
	return r.queryRelations(ctx, query, texteID)
}

func (r *relationRepo) GetByTarget(ctx context.Context, texteID string) ([]entity.TexteRelation, error) {
	query := `SELECT r.id, r.source_id, r.cible_id, r.type, COALESCE(r.note,''), r.created_at, s.titre, c.titre
	          FROM texte_relations r
	          JOIN textes s ON s.id = r.source_id
	          JOIN textes c ON c.id = r.cible_id
	          WHERE r.cible_id = $1
	          ORDER BY r.created_at`
	return r.queryRelations(ctx, query, texteID)
}

func (r *relationRepo) queryRelations(ctx context.Context, query string, texteID string) ([]entity.TexteRelation, error) {
	rows, err := r.db.QueryContext(ctx, query, texteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rels []entity.TexteRelation
	for rows.Next() {
		var rel entity.TexteRelation
		if err := rows.Scan(&rel.ID, &rel.SourceID, &rel.CibleID, &rel.Type, &rel.Note, &rel.CreatedAt, &rel.SourceTitre, &rel.CibleTitre); err != nil {
			return nil, err
		}
		rels = append(rels, rel)
	}
	return rels, rows.Err()
}

func (r *relationRepo) CountForTexte(ctx context.Context, texteID string) (int, int, error) {
	var asSource, asTarget int
	query := `SELECT
	            COUNT(*) FILTER (WHERE source_id = $1),
	            COUNT(*) FILTER (WHERE cible_id = $1)
	          FROM texte_relations
	          WHERE source_id = $1 OR cible_id = $1`
	err := r.db.QueryRowContext(ctx, query, texteID).Scan(&asSource, &asTarget)
	return asSource, asTarget, err
}

func (r *relationRepo) DeleteForTexte(ctx context.Context, texteID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM texte_relations WHERE source_id = $1 OR cible_id = $1`, texteID)
	return err
}
