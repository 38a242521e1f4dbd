package domain

// HighlightCategory classifies an attraction.
type HighlightCategory string

const (
	CategoryBeach     HighlightCategory = "beach"
	CategoryRuins     HighlightCategory = "ruins"
	CategoryMuseum    HighlightCategory = "museum"
	CategoryFood      HighlightCategory = "food"
	CategoryKidsFun   HighlightCategory = "kids-fun"
	CategoryNature    HighlightCategory = "nature"
	CategoryShopping  HighlightCategory = "shopping"
	CategoryViewpoint HighlightCategory = "viewpoint"
	CategoryOther     HighlightCategory = "other"
)

// ValidHighlightCategories is the closed set of highlight categories.
var ValidHighlightCategories = map[HighlightCategory]bool{
	CategoryBeach:     true,
	CategoryRuins:     true,
	CategoryMuseum:    true,
	CategoryFood:      true,
	CategoryKidsFun:   true,
	CategoryNature:    true,
	CategoryShopping:  true,
	CategoryViewpoint: true,
	CategoryOther:     true,
}

// PriceRange is a rough restaurant price band.
type PriceRange string

const (
	PriceCheap    PriceRange = "$"
	PriceModerate PriceRange = "$$"
	PriceSpendy   PriceRange = "$$$"
)

// ValidPriceRanges is the closed set of price ranges.
var ValidPriceRanges = map[PriceRange]bool{
	PriceCheap:    true,
	PriceModerate: true,
	PriceSpendy:   true,
}

// DeviceType is the kind of device a family member uses.
type DeviceType string

const (
	DevicePhone  DeviceType = "phone"
	DeviceTablet DeviceType = "tablet"
)

// AllowedImageTypes lists the MIME types accepted for photo uploads and
// AI import attachments.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}
