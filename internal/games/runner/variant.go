package runner

// Kind tags one of the scoring object variants.
type Kind int

const (
	KindGoldTrophy Kind = iota
	KindSilverTrophy
	KindRedCross
	KindLightningBolt

	kindCount // must stay last
)

// Class groups variants by the sign of their value.
type Class int

const (
	ClassReward Class = iota
	ClassPenalty
)

// String returns the class name.
func (c Class) String() string {
	if c == ClassPenalty {
		return "penalty"
	}
	return "reward"
}

// Variant is the fixed data a kind contributes to every object of that kind.
type Variant struct {
	Kind   Kind
	Name   string
	Sprite string // Opaque sprite id resolved by the asset catalog
	Points int
	Class  Class
}

var variants = [kindCount]Variant{
	KindGoldTrophy: {
		Kind:   KindGoldTrophy,
		Name:   "gold trophy",
		Sprite: "assets/img/objects/gold_trophy.png",
		Points: 10,
		Class:  ClassReward,
	},
	KindSilverTrophy: {
		Kind:   KindSilverTrophy,
		Name:   "silver trophy",
		Sprite: "assets/img/objects/silver_trophy.png",
		Points: 5,
		Class:  ClassReward,
	},
	KindRedCross: {
		Kind:   KindRedCross,
		Name:   "red cross",
		Sprite: "assets/img/objects/tilted_cross.png",
		Points: -5,
		Class:  ClassPenalty,
	},
	KindLightningBolt: {
		Kind:   KindLightningBolt,
		Name:   "lightning bolt",
		Sprite: "assets/img/objects/lightning_bolt.png",
		Points: -10,
		Class:  ClassPenalty,
	},
}

// Variant returns the table entry for the kind.
func (k Kind) Variant() Variant {
	return variants[k]
}

// String returns the variant name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return variants[k].Name
}

// Variants returns a copy of every variant in kind order.
func Variants() []Variant {
	out := variants
	return out[:]
}
