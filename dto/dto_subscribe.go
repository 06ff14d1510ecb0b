package dto

type SubscribeReq struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}
