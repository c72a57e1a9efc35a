package domain

// Key is a physical key position reported by the firmware.
type Key struct {
	Row uint8
	Col uint8
}

// Layout describes how session slots map onto the physical device.
type Layout struct {
	// SlotLEDs maps slot index to LED index; its length is the slot count.
	SlotLEDs []int
	// KeyToSlot maps a physical key position to the slot it selects.
	KeyToSlot map[Key]int
	// GlobalLEDs is the cross-session attention indicator pair.
	GlobalLEDs []int
	// LEDCount is the total number of matrix LEDs on the device.
	LEDCount int
}

// WorkLouderMicroLayout is the reference layout: a 4x4 matrix with rows
// 1-2 carrying the eight session slots (left to right, top to bottom)
// and the top row LEDs 10 and 11 acting as the global indicator.
func WorkLouderMicroLayout() Layout {
	return Layout{
		SlotLEDs: []int{9, 8, 7, 6, 2, 3, 4, 5},
		KeyToSlot: map[Key]int{
			{Row: 1, Col: 0}: 0, {Row: 1, Col: 1}: 1, {Row: 1, Col: 2}: 2, {Row: 1, Col: 3}: 3,
			{Row: 2, Col: 0}: 4, {Row: 2, Col: 1}: 5, {Row: 2, Col: 2}: 6, {Row: 2, Col: 3}: 7,
		},
		GlobalLEDs: []int{10, 11},
		LEDCount:   12,
	}
}

// MaxSlots returns the number of usable session slots.
func (l Layout) MaxSlots() int {
	return len(l.SlotLEDs)
}

// SlotForKey resolves a key press to a slot index.
func (l Layout) SlotForKey(k Key) (int, bool) {
	slot, ok := l.KeyToSlot[k]
	return slot, ok
}
