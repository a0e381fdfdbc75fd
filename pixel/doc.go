// Package pixel implements the 1-bit color model and the page-packed pixel plane
// used by SSD1306-family OLED controllers.
//
// Both types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces.
package pixel
