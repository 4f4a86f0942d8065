package domain

import "time"

// BlogPostStatus indica o estado de publicação de um post
type BlogPostStatus string

const (
	BlogPostStatusDraft     BlogPostStatus = "draft"
	BlogPostStatusPublished BlogPostStatus = "published"
)

// BlogPost é a visão somente-leitura de um post do blog usada pelo motor:
// títulos alimentam a detecção de lacunas de conteúdo e slugs fazem o
// casamento URL-para-post na comparação de períodos. O CRUD completo de
// posts vive em outro serviço
type BlogPost struct {
	ID          string         `json:"id"`
	UserID      int            `json:"user_id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Status      BlogPostStatus `json:"status"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
}
