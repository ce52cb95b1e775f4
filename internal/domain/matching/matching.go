package matching

import (
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/normalize"
)

// MatchCustomer finds the existing customer a save refers to. A case and
// whitespace insensitive name match wins; otherwise, when a phone was
// supplied, the first customer with the same normalized phone is returned.
func MatchCustomer(name, phone string, existing []entities.Customer) (int, bool) {
	key := normalize.NameKey(name)
	if key != "" {
		for i, c := range existing {
			if normalize.NameKey(c.ClientName) == key {
				return i, true
			}
		}
	}

	target := normalize.Phone(phone)
	if target == "" {
		return -1, false
	}
	for i, c := range existing {
		if normalize.Phone(c.Phone) == target {
			return i, true
		}
	}
	return -1, false
}
