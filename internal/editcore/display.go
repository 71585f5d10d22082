package editcore

// Display derives the rendered projection of the buffer. With a zero Mask
// the projection is the text itself; otherwise every rune is substituted by
// the mask rune, so the projected length always equals the text length and
// all indices stay valid across both views.
type Display struct {
	Mask rune
}

// Project builds the displayed sequence for text. The result is always a
// fresh slice.
func (d Display) Project(text []rune) []rune {
	out := make([]rune, len(text))
	if d.Mask == 0 {
		copy(out, text)
		return out
	}
	for i := range out {
		out[i] = d.Mask
	}
	return out
}
