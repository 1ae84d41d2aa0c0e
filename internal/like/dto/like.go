package dto

type LikeRequest struct {
	UUID string `json:"uuid" form:"uuid" binding:"required"`
}

type LikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}
