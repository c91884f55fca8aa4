package request_models

type CreateTopicRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	DisplayName string `json:"display_name" binding:"required,min=2,max=100"`
	Category    string `json:"category" binding:"required,min=2,max=50"`
}
