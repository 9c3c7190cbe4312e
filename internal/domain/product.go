package domain

import "time"

// ProductVariant is a color/style/material variant with its own stock counter.
type ProductVariant struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	Value         string  `bson:"value" json:"value"`
	Price         float64 `bson:"price" json:"price"`
	ImageURL      string  `bson:"image_url,omitempty" json:"image_url,omitempty"`
	StockQuantity int     `bson:"stock_quantity" json:"stock_quantity"`
	IsActive      bool    `bson:"is_active" json:"is_active"`
}

// SizeVariant is a size option with its own stock counter.
type SizeVariant struct {
	ID            string  `bson:"id" json:"id"`
	Size          string  `bson:"size" json:"size"`
	Price         float64 `bson:"price" json:"price"`
	StockQuantity int     `bson:"stock_quantity" json:"stock_quantity"`
	IsActive      bool    `bson:"is_active" json:"is_active"`
}

// Product carries the stock counters mutated during inventory reconciliation.
// StockQuantity never goes below zero and InStock always mirrors it.
type Product struct {
	ID            string           `bson:"_id,omitempty" json:"id"`
	ShopID        string           `bson:"shop_id" json:"shop_id"`
	OwnerID       string           `bson:"owner_id" json:"owner_id"`
	Name          string           `bson:"name" json:"name"`
	Price         float64          `bson:"price" json:"price"`
	Currency      string           `bson:"currency" json:"currency"`
	InStock       bool             `bson:"in_stock" json:"in_stock"`
	StockQuantity int              `bson:"stock_quantity" json:"stock_quantity"`
	UnitsSold     int              `bson:"units_sold" json:"units_sold"`
	Variants      []ProductVariant `bson:"variants,omitempty" json:"variants,omitempty"`
	SizeVariants  []SizeVariant    `bson:"size_variants,omitempty" json:"size_variants,omitempty"`
	CreatedAt     time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time        `bson:"updated_at" json:"updated_at"`
}

// Shop is read during checkout only to resolve the owner of a shop.
type Shop struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	OwnerID string `bson:"owner_id" json:"owner_id"`
	Name    string `bson:"name" json:"name"`
}
