package dto

import "time"

// StageSetDTO altı aşama sayacının API temsili.
type StageSetDTO struct {
	Foam       int `json:"foam"`
	Upholstery int `json:"upholstery"`
	Assembly   int `json:"assembly"`
	Packaged   int `json:"packaged"`
	Stored     int `json:"stored"`
	Shipped    int `json:"shipped"`
}

// CreateProductRequest body: POST /api/products.
// Quantity legacy sipariş içe aktarımından gelir ve sonradan değişmez.
type CreateProductRequest struct {
	OrderCode string `json:"order_code"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// ProductResponse bir sipariş kaleminin API temsili.
type ProductResponse struct {
	ID           string      `json:"id"`
	OrderCode    string      `json:"order_code"`
	Name         string      `json:"name"`
	Quantity     int         `json:"quantity"`
	Stages       StageSetDTO `json:"stages"`
	Status       string      `json:"status"`
	SubStatus    string      `json:"sub_status,omitempty"`
	EngineerNote string      `json:"engineer_note,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ProductListResponse listeleme yanıtı.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductionLogResponse üretim günlüğü kaydının API temsili.
type ProductionLogResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// InventoryLocationResponse raf konumu kaydının API temsili.
type InventoryLocationResponse struct {
	ProductID string    `json:"product_id"`
	Shelf     string    `json:"shelf"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
