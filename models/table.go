package models

// Table is a physical restaurant table. QRCode holds the payload encoded
// into the printed QR code: the stringified table number.
type Table struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	QRCode string `json:"qr_code"`
}

type AddTableRequest struct {
	Number int `json:"number" form:"number" binding:"required"`
}
