package dto

import "time"

// ShipmentItemRequest sevkiyat kalemi girdisi.
type ShipmentItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateShipmentRequest body: POST /api/shipments (toplu, PLANNED).
type CreateShipmentRequest struct {
	Company       string                `json:"company"`
	DriverName    string                `json:"driver_name,omitempty"`
	VehiclePlate  string                `json:"vehicle_plate,omitempty"`
	EstimatedDate time.Time             `json:"estimated_date"`
	Items         []ShipmentItemRequest `json:"items"`
}

// ShipProductRequest body: POST /api/shipments/quick (tek ürün, anında SHIPPED).
type ShipProductRequest struct {
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
	Company      string `json:"company"`
	DriverName   string `json:"driver_name,omitempty"`
	VehiclePlate string `json:"vehicle_plate,omitempty"`
}

// UpdateShipmentStatusRequest body: PATCH /api/shipments/:id/status.
// Tek geçerli hedef SHIPPED'dir.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
}

// ShipmentItemResponse sevkiyat kaleminin API temsili.
type ShipmentItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ShipmentResponse sevkiyat kaydının API temsili.
type ShipmentResponse struct {
	ID            string                 `json:"id"`
	Company       string                 `json:"company"`
	DriverName    string                 `json:"driver_name,omitempty"`
	VehiclePlate  string                 `json:"vehicle_plate,omitempty"`
	EstimatedDate *time.Time             `json:"estimated_date,omitempty"`
	ExitDate      *time.Time             `json:"exit_date,omitempty"`
	Status        string                 `json:"status"`
	Items         []ShipmentItemResponse `json:"items"`
	CreatedAt     time.Time              `json:"created_at"`
}

// ShipmentListResponse listeleme yanıtı.
type ShipmentListResponse struct {
	Items []ShipmentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
