package dto

import "finance-dashboard/internal/models"

// LinkedAccountListResponse lists a user's linked accounts; access tokens are never serialized
type LinkedAccountListResponse struct {
	Accounts []models.LinkedAccount `json:"accounts"`
	Total    int                    `json:"total"`
}
