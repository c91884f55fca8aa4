package response_models

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
}
