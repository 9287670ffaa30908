package entities

// MetalType identifies a band metal from the fixed catalog offered by the
// builder. Setting prices are keyed by this value.

type MetalType string

const (
	Metal14KWhiteGold  MetalType = "14k_white_gold"
	Metal14KYellowGold MetalType = "14k_yellow_gold"
	Metal14KRoseGold   MetalType = "14k_rose_gold"
	Metal18KWhiteGold  MetalType = "18k_white_gold"
	Metal18KYellowGold MetalType = "18k_yellow_gold"
	Metal18KRoseGold   MetalType = "18k_rose_gold"
	MetalPlatinum      MetalType = "platinum"
)

// MetalTypes lists every metal the storefront can offer, in display order.
func MetalTypes() []MetalType {
	return []MetalType{
		Metal14KWhiteGold,
		Metal14KYellowGold,
		Metal14KRoseGold,
		Metal18KWhiteGold,
		Metal18KYellowGold,
		Metal18KRoseGold,
		MetalPlatinum,
	}
}

func (m MetalType) IsValid() bool {
	for _, v := range MetalTypes() {
		if m == v {
			return true
		}
	}
	return false
}
