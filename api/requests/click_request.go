package requests

type ClickRequest struct {
	Selector string `json:"selector" validate:"required"`
	Index    int    `json:"index" validate:"gte=0"`
}
