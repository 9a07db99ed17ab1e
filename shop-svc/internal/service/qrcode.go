package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type QRGenerator interface {
	Generate(content string) ([]byte, error)
}

type DefaultQRGenerator struct {
	Size int
}

func (g DefaultQRGenerator) Generate(content string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = defaultQRSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}

// PickupURL is the link encoded into an order's pickup code.
func PickupURL(baseURL, orderID string) string {
	return fmt.Sprintf("%s/api/orders/%s", strings.TrimRight(baseURL, "/"), orderID)
}
