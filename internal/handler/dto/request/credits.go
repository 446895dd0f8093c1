package request

type DebitCreditsRequest struct {
	Amount      int    `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"required"`
	ReferenceID string `json:"reference_id,omitempty"`
}
