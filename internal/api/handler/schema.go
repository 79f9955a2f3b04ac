package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// --- Article wire types ---

type createArticleRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	AuthorID    int    `json:"authorId"    validate:"gte=0"`
}

type updateArticleRequest struct {
	ID          int    `json:"id"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	AuthorID    int    `json:"authorId"    validate:"gte=0"`
}

// authorRefResponse is the one-level-deep author embedded in article
// responses. It never contains a nested article list.
type authorRefResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type articleResponse struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	AuthorID    int                `json:"authorId"`
	Author      *authorRefResponse `json:"author,omitempty"`
	CreatedDate time.Time          `json:"createdDate"`
	UpdatedDate *time.Time         `json:"updatedDate,omitempty"`
}

// --- Author wire types ---

type createAuthorRequest struct {
	Name string `json:"name" validate:"required"`
}

type authorSummaryResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ArticleCount int    `json:"articleCount"`
}

// authorArticleResponse is an article summary inside an author detail.
// Intentionally carries no nested author.
type authorArticleResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"createdDate"`
}

type authorDetailResponse struct {
	ID       int                     `json:"id"`
	Name     string                  `json:"name"`
	Articles []authorArticleResponse `json:"articles"`
}

// --- Account wire types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
	RefreshToken string `json:"refreshToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type userInfoResponse struct {
	Email            string   `json:"email"`
	IsEmailConfirmed bool     `json:"isEmailConfirmed"`
	Roles            []string `json:"roles"`
}

// --- Activity wire types ---

type auditEntryResponse struct {
	Entity   string    `json:"entity"`
	EntityID int       `json:"entityId"`
	Action   string    `json:"action"`
	Actor    string    `json:"actor"`
	At       time.Time `json:"at"`
}
