package dto

// EditStagesRequest body: POST /api/products/:id/stages.
// Yalnızca gönderilen alanlar düzenlenir. Stored ve Shipped alanları kabul
// edilmez; gönderilirse istek FORBIDDEN_FIELD ile reddedilir (depo girişi ve
// sevkiyat uçları kullanılmalı).
type EditStagesRequest struct {
	Foam       *int    `json:"foam,omitempty"`
	Upholstery *int    `json:"upholstery,omitempty"`
	Assembly   *int    `json:"assembly,omitempty"`
	Packaged   *int    `json:"packaged,omitempty"`
	Stored     *int    `json:"stored,omitempty"`
	Shipped    *int    `json:"shipped,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// EditStagesResponse uygulanan sayaçları döner. Kaskad kırpma nedeniyle
// uygulanan değerler istenenden farklı olabilir; çağıran bu yanıtı gösterir.
type EditStagesResponse struct {
	Applied   StageSetDTO `json:"applied"`
	Status    string      `json:"status"`
	SubStatus string      `json:"sub_status,omitempty"`
}

// WarehouseTransferRequest body: POST /api/products/:id/warehouse-transfer.
type WarehouseTransferRequest struct {
	Quantity int    `json:"quantity"`
	Shelf    string `json:"shelf,omitempty"`
}
