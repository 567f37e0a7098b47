package model

import "time"

// Gemstone represents a stone listed for sale in the catalog.
type Gemstone struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Color        string    `json:"color"`
	WeightCarats float64   `json:"weight_carats"`
	Price        float64   `json:"price"`
	IsSold       bool      `json:"is_sold"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}
