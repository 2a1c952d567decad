package domain

import "errors"

// Domain hataları (dış bağımlılık yok).
var (
	ErrNotFound           = errors.New("kayıt bulunamadı")
	ErrUserNotFound       = errors.New("kullanıcı bulunamadı")
	ErrEmailAlreadyExists = errors.New("bu e-posta zaten kayıtlı")
	ErrInvalidInput       = errors.New("geçersiz girdi")
	ErrDuplicate          = errors.New("kayıt zaten mevcut")
	ErrUnauthorized       = errors.New("yetkisiz erişim")
	ErrForbidden          = errors.New("erişim reddedildi")
	ErrConflict           = errors.New("mevcut durumla çelişiyor")

	// ErrForbiddenField: depo ve sevk sayaçları aşama düzenlemesiyle değiştirilemez;
	// yalnızca depo girişi ve sevkiyat servisleri üzerinden hareket ederler.
	ErrForbiddenField = errors.New("depo ve sevk sayaçları doğrudan düzenlenemez")

	// ErrInsufficientStage: kaynak aşamada istenen miktar kadar ürün yok.
	ErrInsufficientStage = errors.New("aşamada yeterli miktar yok")

	// ErrConservation: aşama toplamı sipariş miktarını aşıyor. Kaskad kırpma
	// nedeniyle normalde oluşmaz; savunma amaçlı son kontrol için kullanılır.
	ErrConservation = errors.New("aşama toplamı sipariş miktarını aşıyor")
)
