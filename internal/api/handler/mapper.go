package handler

import (
	"github.com/ujsag/newspress/internal/core/domain"
	"github.com/ujsag/newspress/internal/core/ports"
)

// --- Service result → HTTP response ---

func toArticleResponse(d *ports.ArticleDetail) articleResponse {
	resp := articleResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		AuthorID:    d.AuthorID,
		CreatedDate: d.CreatedAt,
		UpdatedDate: d.UpdatedAt,
	}
	if d.Author != nil {
		resp.Author = &authorRefResponse{ID: d.Author.ID, Name: d.Author.Name}
	}
	return resp
}

func toArticleResponses(details []ports.ArticleDetail) []articleResponse {
	out := make([]articleResponse, len(details))
	for i := range details {
		out[i] = toArticleResponse(&details[i])
	}
	return out
}

func toAuthorSummaryResponses(items []ports.AuthorSummary) []authorSummaryResponse {
	out := make([]authorSummaryResponse, len(items))
	for i, a := range items {
		out[i] = authorSummaryResponse{ID: a.ID, Name: a.Name, ArticleCount: a.ArticleCount}
	}
	return out
}

func toAuthorDetailResponse(d *ports.AuthorDetail) authorDetailResponse {
	articles := make([]authorArticleResponse, len(d.Articles))
	for i, a := range d.Articles {
		articles[i] = authorArticleResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			CreatedDate: a.CreatedAt,
		}
	}
	return authorDetailResponse{ID: d.ID, Name: d.Name, Articles: articles}
}

func toTokenResponse(p *ports.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken:  p.AccessToken,
		TokenType:    p.TokenType,
		ExpiresIn:    p.ExpiresIn,
		RefreshToken: p.RefreshToken,
	}
}

func toAuditResponses(entries []*domain.AuditEntry) []auditEntryResponse {
	out := make([]auditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = auditEntryResponse{
			Entity:   e.Entity,
			EntityID: e.EntityID,
			Action:   e.Action,
			Actor:    e.Actor,
			At:       e.At,
		}
	}
	return out
}
