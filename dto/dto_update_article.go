package dto

// Pointer fields so an absent field and an empty value stay distinguishable.
// Only supplied fields end up in the update patch.
type UpdateArticleReq struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Category  *string   `json:"category"`
	Tags      *[]string `json:"tags"`
	Thumbnail *string   `json:"thumbnail"`
}
