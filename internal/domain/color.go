package domain

// HSV is a color in the device's native scale, each channel 0-255.
type HSV struct {
	H uint8
	S uint8
	V uint8
}

// WithValue returns the same hue and saturation at a different brightness.
func (c HSV) WithValue(v uint8) HSV {
	return HSV{H: c.H, S: c.S, V: v}
}

// Off is the all-dark color.
var Off = HSV{}
