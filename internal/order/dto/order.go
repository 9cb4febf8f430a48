package dto

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=placed processing shipped delivered cancelled"`
}
