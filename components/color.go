package components

// Color identifies one of the three agent populations.
// The dominance cycle is fixed: red beats green, green beats blue,
// blue beats red. It drives both the force field (chase prey, flee
// predator) and battle outcomes. Same-color pairs are always neutral.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
)

// NumColors is the number of distinct agent colors.
const NumColors = 3

// Prey returns the color this color beats.
func (c Color) Prey() Color {
	switch c {
	case ColorRed:
		return ColorGreen
	case ColorGreen:
		return ColorBlue
	case ColorBlue:
		return ColorRed
	}
	panic("components: unknown color")
}

// Predator returns the color that beats this color.
func (c Color) Predator() Color {
	switch c {
	case ColorRed:
		return ColorBlue
	case ColorGreen:
		return ColorRed
	case ColorBlue:
		return ColorGreen
	}
	panic("components: unknown color")
}

// Beats reports whether c wins a battle against other.
// Same colors never battle, so c.Beats(c) is false.
func (c Color) Beats(other Color) bool {
	return c.Prey() == other
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	}
	return "unknown"
}

// AllColors lists every color once, in enum order.
func AllColors() [NumColors]Color {
	return [NumColors]Color{ColorRed, ColorGreen, ColorBlue}
}
