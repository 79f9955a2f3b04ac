package rest

import "time"

// Wire shapes as the API serialises them. These are distinct from the server's
// domain types and from the client display model; the catalog package maps
// between them.

// Article is an article as returned by the articles endpoints.
type Article struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AuthorID    int        `json:"authorId"`
	Author      *AuthorRef `json:"author,omitempty"`
	CreatedDate time.Time  `json:"createdDate"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
}

// AuthorRef is the embedded author on an article.
type AuthorRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AuthorSummary is one row of the author list.
type AuthorSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ArticleCount int    `json:"articleCount"`
}

// AuthorArticle is an article summary embedded in an author detail.
type AuthorArticle struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	CreatedDate time.Time `json:"createdDate"`
}

// AuthorDetail is a single author with one level of article summaries.
type AuthorDetail struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Articles []AuthorArticle `json:"articles"`
}

// ArticleInput is the request body for article create/update.
type ArticleInput struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AuthorID    int    `json:"authorId"`
}

// AuthorInput is the request body for author create.
type AuthorInput struct {
	Name string `json:"name"`
}

// TokenPair is the login/refresh response.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
	RefreshToken string `json:"refreshToken"`
}

// UserInfo is the /manage/info response.
type UserInfo struct {
	Email            string   `json:"email"`
	IsEmailConfirmed bool     `json:"isEmailConfirmed"`
	Roles            []string `json:"roles"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
