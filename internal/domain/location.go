package domain

// Location is a physical address shared by one or more facilities. The
// address string is the practical de-duplication key on the write path.
type Location struct {
	ID         int64   `db:"id" json:"id"`
	Building   *string `db:"building" json:"building,omitempty"`
	Block      *string `db:"block" json:"block,omitempty"`
	Road       string  `db:"road" json:"road"`
	Address    string  `db:"address" json:"address"`
	PostalCode *string `db:"postal_code" json:"postal_code,omitempty"`
	Latitude   float64 `db:"latitude" json:"latitude"`
	Longitude  float64 `db:"longitude" json:"longitude"`
}

// NewLocation carries the fields of a location insert; the id is assigned by
// the backend.
type NewLocation struct {
	Building   *string
	Block      *string
	Road       string
	Address    string
	PostalCode *string
	Latitude   float64
	Longitude  float64
}
