package models

type PageResponse struct {
	ID            string   `json:"id"`
	Students      int      `json:"students"`
	Notifications []string `json:"notifications"`
}

type ClickResponse struct {
	Notifications []string `json:"notifications"`
	Error         string   `json:"error,omitempty"`
}
