package domain

// Address is an immutable postal address. It has no field rules of its own but embeds
// Notifiable so it takes part in aggregation like every other value object.
type Address struct {
	Notifiable
	street       string
	number       string
	complement   string
	neighborhood string
	city         string
	state        string
	country      string
	zipCode      string
}

// NewAddress builds an Address.
func NewAddress(street, number, complement, neighborhood, city, state, country, zipCode string) Address {
	return Address{
		street:       street,
		number:       number,
		complement:   complement,
		neighborhood: neighborhood,
		city:         city,
		state:        state,
		country:      country,
		zipCode:      zipCode,
	}
}

func (a Address) Street() string       { return a.street }
func (a Address) Number() string       { return a.number }
func (a Address) Complement() string   { return a.complement }
func (a Address) Neighborhood() string { return a.neighborhood }
func (a Address) City() string         { return a.city }
func (a Address) State() string        { return a.state }
func (a Address) Country() string      { return a.country }
func (a Address) ZipCode() string      { return a.zipCode }
