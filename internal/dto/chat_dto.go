package dto

type AskRequest struct {
	Query        string `json:"query" validate:"required,min=1"`
	UseWebSearch bool   `json:"use_web_search"`
}

type AskResponse struct {
	Answer    string   `json:"answer"`
	Citations []string `json:"citations,omitempty"`
}
