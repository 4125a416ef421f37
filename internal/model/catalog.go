package model

// MenuItem is a single dish on the restaurant menu.  Menu items are
// independent entities; bookings never reference them.
//
// Fields:
//  ID          – opaque identifier.
//  Name        – dish name.
//  Category    – free-text grouping used by the menu page (e.g. "Starters").
//  Price       – list price.
//  Image       – image URL.
//  Description – short marketing copy.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// RoomType describes a bookable room category.  Room bookings reference a
// room type by id and carry a denormalized copy of its display name; the
// copy is frozen at booking time and is not a live join.
//
// Fields:
//  ID            – opaque identifier.
//  Name          – display name, e.g. "Classic Heritage 101".
//  PricePerNight – nightly rate at the time of listing.
//  Image         – image URL.
//  Capacity      – maximum number of guests.
//  Description   – marketing copy.
//  Amenities     – amenity labels shown on the room card.
type RoomType struct {
	ID            string   `json:"id"`
	Name          string   `json:"type"`
	PricePerNight float64  `json:"pricePerNight"`
	Image         string   `json:"image"`
	Capacity      int      `json:"capacity"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
}
