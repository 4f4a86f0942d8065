package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/content-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

const (
	googleTokensTable = "google_tokens gt"
)

type GoogleTokenRepository interface {
	GetByUserID(userID int) (*domain.GoogleToken, error)
	Upsert(token *domain.GoogleToken) error
	DeleteByUserID(userID int) error
}

type googleTokenRepository struct {
	conn *postgres.Connection
}

func NewGoogleTokenRepository(conn *postgres.Connection) GoogleTokenRepository {
	return &googleTokenRepository{
		conn: conn,
	}
}

func (r *googleTokenRepository) GetByUserID(userID int) (*domain.GoogleToken, error) {
	query, args, err := squirrel.
		Select("gt.user_id, gt.access_token, gt.refresh_token, gt.expires_at, gt.scope, gt.created_at, gt.updated_at").
		From(googleTokensTable).
		Where(squirrel.Eq{"gt.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	token := &domain.GoogleToken{}
	err = row.Scan(
		&token.UserID,
		&token.AccessToken,
		&token.RefreshToken,
		&token.ExpiresAt,
		&token.Scope,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear token: %w", err)
	}

	return token, nil
}

// Upsert grava o registro de token do usuário. Na primeira gravação o
// refresh token é obrigatório; nas renovações o refresh token anterior é
// preservado quando o novo vier vazio (o Google costuma omitir o
// refresh_token em concessões subsequentes)
func (r *googleTokenRepository) Upsert(token *domain.GoogleToken) error {
	if token.RefreshToken == "" {
		existing, err := r.GetByUserID(token.UserID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrMissingRefreshToken
		}
		token.RefreshToken = existing.RefreshToken
	}

	query := squirrel.StatementBuilder.
		Insert("google_tokens").
		Columns("user_id", "access_token", "refresh_token", "expires_at", "scope").
		Values(
			token.UserID,
			token.AccessToken,
			token.RefreshToken,
			token.ExpiresAt,
			token.Scope,
		).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				expires_at = EXCLUDED.expires_at,
				scope = EXCLUDED.scope,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	token.UpdatedAt = time.Now()

	return nil
}

func (r *googleTokenRepository) DeleteByUserID(userID int) error {
	query, args, err := squirrel.
		Delete("google_tokens").
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
