package request

type AddSongRequest struct {
	Query string `json:"query" binding:"required"`
}
