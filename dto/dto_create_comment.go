package dto

type CreateCommentReq struct {
	ArticleID string `json:"articleId" validate:"required"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	UserImage string `json:"userImage"`
	Text      string `json:"text" validate:"required"`
}
