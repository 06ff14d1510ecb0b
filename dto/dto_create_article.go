package dto

// CreatedAt is left untyped on purpose: callers send either a string date,
// an epoch-milliseconds number, or nothing at all. services.NormalizeCreatedAt
// turns whatever arrived into a concrete timestamp.
type CreateArticleReq struct {
	AuthorID    string   `json:"authorId"`
	Username    string   `json:"username"`
	AuthorImage string   `json:"authorImage"`
	Email       string   `json:"email" validate:"required,email"`
	Title       string   `json:"title" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail"`
	CreatedAt   any      `json:"createdAt"`
}
