package entity

import "time"

// InventoryLocation depodaki birimlerin fiziksel raf konumunu tutar.
// (productID, shelf) başına toplamsal upsert; stored sayacına ek bilgidir ve
// toplamda onu asla aşmaz.
type InventoryLocation struct {
	ProductID string
	Shelf     string
	Quantity  int
	UpdatedAt time.Time
}
