package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as 0..1 components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background RGB
	Snake      RGB
	SnakeHead  RGB
	Food       RGB
	Special    RGB
	Spark      RGB
	Burst      RGB
	Text       RGB
	BoostFull  RGB
	BoostLow   RGB
	GameOver   RGB
}{
	Background: RGB{R: 245, G: 245, B: 245},
	Snake:      RGB{R: 230, G: 41, B: 55},
	SnakeHead:  RGB{R: 190, G: 33, B: 55},
	Food:       RGB{R: 0, G: 121, B: 241},
	Special:    RGB{R: 255, G: 203, B: 0},
	Spark:      RGB{R: 255, G: 161, B: 0},
	Burst:      RGB{R: 0, G: 0, B: 0},
	Text:       RGB{R: 0, G: 0, B: 0},
	BoostFull:  RGB{R: 0, G: 158, B: 47},
	BoostLow:   RGB{R: 190, G: 33, B: 55},
	GameOver:   RGB{R: 190, G: 33, B: 55},
}
