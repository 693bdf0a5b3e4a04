package handlers

import "time"

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	CostValue   float64 `json:"cost_value"`
	SaleValue   float64 `json:"sale_value"`
}

type ProductResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	CostValue   float64   `json:"cost_value"`
	SaleValue   float64   `json:"sale_value"`
	Margin      float64   `json:"margin"`
	CreatedAt   time.Time `json:"created_at"`
}

type DashboardSummary struct {
	TotalProducts int     `json:"total_products"`
	TotalValue    float64 `json:"total_value"`
	AverageMargin float64 `json:"average_margin"`
}

type DashboardResponse struct {
	Products []ProductResponse `json:"products"`
	Summary  DashboardSummary  `json:"summary"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
