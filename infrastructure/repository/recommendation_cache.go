package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/content-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

type RecommendationCacheRepository interface {
	GetActive(userID int, now time.Time) (*domain.RecommendationCacheEntry, error)
	Replace(entry *domain.RecommendationCacheEntry) error
	Invalidate(userID int) error
	DeleteExpired(now time.Time) (int64, error)
}

type recommendationCacheRepository struct {
	conn *postgres.Connection
}

func NewRecommendationCacheRepository(conn *postgres.Connection) RecommendationCacheRepository {
	return &recommendationCacheRepository{
		conn: conn,
	}
}

func (r *recommendationCacheRepository) GetActive(userID int, now time.Time) (*domain.RecommendationCacheEntry, error) {
	query, args, err := squirrel.
		Select("sr.id, sr.user_id, sr.payload, sr.created_at, sr.expires_at").
		From("search_recommendations sr").
		Where(squirrel.Eq{"sr.user_id": userID}).
		Where(squirrel.Gt{"sr.expires_at": now}).
		OrderBy("sr.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	entry := &domain.RecommendationCacheEntry{}
	var payload []byte
	err = row.Scan(
		&entry.ID,
		&entry.UserID,
		&payload,
		&entry.CreatedAt,
		&entry.ExpiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear recomendações: %w", err)
	}

	if err := jsoniter.Unmarshal(payload, &entry.Recommendations); err != nil {
		return nil, fmt.Errorf("erro ao deserializar payload de recomendações: %w", err)
	}

	return entry, nil
}

// Replace substitui todas as recomendações do usuário pelo novo conjunto.
// Delete e insert rodam na mesma transação para que leitores nunca vejam
// uma mistura de gerações antigas e novas
func (r *recommendationCacheRepository) Replace(entry *domain.RecommendationCacheEntry) error {
	payload, err := jsoniter.Marshal(entry.Recommendations)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload de recomendações: %w", err)
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		delQuery, delArgs, err := squirrel.
			Delete("search_recommendations").
			Where(squirrel.Eq{"user_id": entry.UserID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(delQuery, delArgs...); err != nil {
			return fmt.Errorf("erro ao remover recomendações anteriores: %w", err)
		}

		insQuery, insArgs, err := squirrel.StatementBuilder.
			Insert("search_recommendations").
			Columns("id", "user_id", "payload", "created_at", "expires_at").
			Values(entry.ID, entry.UserID, payload, entry.CreatedAt, entry.ExpiresAt).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(insQuery, insArgs...); err != nil {
			return fmt.Errorf("erro ao inserir recomendações: %w", err)
		}

		return nil
	})
}

func (r *recommendationCacheRepository) Invalidate(userID int) error {
	query, args, err := squirrel.
		Delete("search_recommendations").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *recommendationCacheRepository) DeleteExpired(now time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("search_recommendations").
		Where(squirrel.LtOrEq{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar registros removidos: %w", err)
	}

	return removed, nil
}
