package enum

// PriceTier selects which of a product's two prices applies to a sale line.
// The general tier is the public price; the special tier is the discounted
// price offered to regular customers.
type PriceTier string

const (
	TierGeneral PriceTier = "general"
	TierSpecial PriceTier = "special"
)

// Valid reports whether the tier is a known value.
func (t PriceTier) Valid() bool {
	return t == TierGeneral || t == TierSpecial
}

func (t PriceTier) String() string {
	return string(t)
}
