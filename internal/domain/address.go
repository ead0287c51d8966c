package domain

// Address is a geocoder search result, normalized from the provider's
// uppercase field conventions ("NIL" markers become empty optionals).
type Address struct {
	Building   *string `json:"building,omitempty"`
	Block      *string `json:"block,omitempty"`
	Road       string  `json:"road"`
	Address    string  `json:"address"`
	PostalCode string  `json:"postal_code"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}
