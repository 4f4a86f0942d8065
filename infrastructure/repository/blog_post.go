package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/content-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

type BlogPostRepository interface {
	ListPublishedByUserID(userID int) ([]*domain.BlogPost, error)
}

type blogPostRepository struct {
	conn *postgres.Connection
}

func NewBlogPostRepository(conn *postgres.Connection) BlogPostRepository {
	return &blogPostRepository{
		conn: conn,
	}
}

func (r *blogPostRepository) ListPublishedByUserID(userID int) ([]*domain.BlogPost, error) {
	query, args, err := squirrel.
		Select("bp.id, bp.user_id, bp.title, bp.slug, bp.status, bp.published_at").
		From("blog_posts bp").
		Where(squirrel.Eq{"bp.user_id": userID}).
		Where(squirrel.Eq{"bp.status": domain.BlogPostStatusPublished}).
		OrderBy("bp.published_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.BlogPost, 0)
	for rows.Next() {
		post := &domain.BlogPost{}
		err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Slug,
			&post.Status,
			&post.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar posts: %w", err)
	}

	return posts, nil
}
