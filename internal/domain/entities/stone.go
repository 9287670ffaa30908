package entities

import "time"

// StoneShape is the cut outline of a diamond or gemstone.

type StoneShape string

const (
	ShapeRound    StoneShape = "round"
	ShapePrincess StoneShape = "princess"
	ShapeOval     StoneShape = "oval"
	ShapeEmerald  StoneShape = "emerald"
	ShapeCushion  StoneShape = "cushion"
	ShapePear     StoneShape = "pear"
	ShapeMarquise StoneShape = "marquise"
	ShapeRadiant  StoneShape = "radiant"
	ShapeAsscher  StoneShape = "asscher"
	ShapeHeart    StoneShape = "heart"
)

// Certificate is the grading-lab paperwork attached to a stone.
type Certificate struct {
	Lab    string `json:"lab,omitempty"`
	Number string `json:"number,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Stone is a diamond or gemstone product with 4Cs attributes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (shop-index): shop
//
// Monetary representation:
//   - Price is the stone's sale price in major currency units.

type Stone struct {
	ID          string      `json:"id"`
	Shop        string      `json:"shop"`
	Carat       float64     `json:"carat"`
	Shape       StoneShape  `json:"shape"`
	Cut         string      `json:"cut"`
	Color       string      `json:"color"`
	Clarity     string      `json:"clarity"`
	Certificate Certificate `json:"certificate,omitempty"`
	Price       float64     `json:"price"`
	ImageURL    string      `json:"image_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
