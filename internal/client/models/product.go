// Package models defines the catalogue and content shapes the terminal
// client receives from the storefront API.
package models

import "github.com/shopspring/decimal"

type Image struct {
	URL string `json:"url"`
}

type Product struct {
	ID         string          `json:"_id"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
	MainImages []Image         `json:"mainImages"`
	Colors     []string        `json:"colors,omitempty"`
	Sizes      []string        `json:"sizes,omitempty"`
}

// FirstImage returns the first main image URL, or "" when there is none.
func (p Product) FirstImage() string {
	if len(p.MainImages) == 0 {
		return ""
	}
	return p.MainImages[0].URL
}

type Banner struct {
	Image      string `json:"image"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonLink string `json:"buttonLink"`
}
