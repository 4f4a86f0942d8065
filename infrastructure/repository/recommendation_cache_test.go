package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/content-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

func newCacheRepo(t *testing.T) (RecommendationCacheRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRecommendationCacheRepository(&postgres.Connection{DB: db}), mock
}

func sampleEntry(now time.Time) *domain.RecommendationCacheEntry {
	return &domain.RecommendationCacheEntry{
		ID:     "rec001",
		UserID: 42,
		Recommendations: []domain.Recommendation{
			{
				Type:          domain.RecommendationNewPost,
				Title:         "Guia de tingimento com corantes ácidos",
				TargetKeyword: "corante ácido para lã",
				Priority:      "high",
				Confidence:    "medium",
			},
		},
		CreatedAt: now,
		ExpiresAt: now.AddDate(0, 0, 7),
	}
}

func TestRecommendationCacheRepository_GetActive(t *testing.T) {
	repo, mock := newCacheRepo(t)

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	entry := sampleEntry(now.AddDate(0, 0, -3))
	payload, err := jsoniter.Marshal(entry.Recommendations)
	assert.NoError(t, err)

	// Só entradas com expires_at estritamente no futuro contam como ativas
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT sr.id, sr.user_id, sr.payload, sr.created_at, sr.expires_at " +
			"FROM search_recommendations sr " +
			"WHERE sr.user_id = $1 AND sr.expires_at > $2 " +
			"ORDER BY sr.created_at DESC LIMIT 1",
	)).
		WithArgs(42, now).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "payload", "created_at", "expires_at"}).
			AddRow(entry.ID, entry.UserID, payload, entry.CreatedAt, entry.ExpiresAt))

	got, err := repo.GetActive(42, now)

	assert.NoError(t, err)
	assert.Equal(t, "rec001", got.ID)
	assert.Len(t, got.Recommendations, 1)
	assert.Equal(t, "corante ácido para lã", got.Recommendations[0].TargetKeyword)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationCacheRepository_GetActive_SemEntrada(t *testing.T) {
	repo, mock := newCacheRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT sr.id, sr.user_id, sr.payload").
		WithArgs(42, now).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetActive(42, now)

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationCacheEntry_JanelaDeValidade(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entry := sampleEntry(createdAt)

	// Legível um pouco antes do vencimento, vencida um minuto depois
	assert.False(t, entry.Expired(createdAt.AddDate(0, 0, 6).Add(23*time.Hour)))
	assert.True(t, entry.Expired(createdAt.AddDate(0, 0, 7).Add(time.Minute)))
	assert.True(t, entry.Expired(entry.ExpiresAt))
}

func TestRecommendationCacheRepository_Replace(t *testing.T) {
	repo, mock := newCacheRepo(t)

	entry := sampleEntry(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))
	payload, err := jsoniter.Marshal(entry.Recommendations)
	assert.NoError(t, err)

	// O delete precisa vir antes do insert, na mesma transação
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM search_recommendations WHERE user_id = $1",
	)).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO search_recommendations (id,user_id,payload,created_at,expires_at) " +
			"VALUES ($1,$2,$3,$4,$5)",
	)).
		WithArgs(entry.ID, entry.UserID, payload, entry.CreatedAt, entry.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Replace(entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationCacheRepository_Replace_RollbackNoErro(t *testing.T) {
	repo, mock := newCacheRepo(t)

	entry := sampleEntry(time.Now())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM search_recommendations").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO search_recommendations").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.Replace(entry)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecommendationCacheRepository_DeleteExpired(t *testing.T) {
	repo, mock := newCacheRepo(t)

	now := time.Date(2026, 8, 29, 3, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM search_recommendations WHERE expires_at <= $1",
	)).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpired(now)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
