// Package qrcode renders QR code PNG images for short payloads such as
// mailto: URIs, so a composed message can be opened on a phone by scanning
// the screen.
//
// It wraps github.com/skip2/go-qrcode with functional options, input
// validation and helpers that return raw PNG bytes, a data URI for <img> tags,
// or write the image to disk.
//
//	png, err := qrcode.Encode(uri, qrcode.WithSize(320))
//	src, err := qrcode.DataURI(uri)
//	err := qrcode.WriteFile("order.png", uri)
package qrcode
