package additiontype

type CreateAdditionTypeRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Description   string `json:"description"`
	FrequencyType string `json:"frequencyType" binding:"required,oneof=MONTHLY SPECIAL"`
}

type UpdateAdditionTypeRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	Description   string `json:"description"`
	FrequencyType string `json:"frequencyType" binding:"required,oneof=MONTHLY SPECIAL"`
}

type AdditionTypeResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	FrequencyType string `json:"frequencyType"`
}
