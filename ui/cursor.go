package ui

import (
	"math"
	"strings"

	"commandsite/anim"

	"github.com/mattn/go-runewidth"
)

// CursorCanvas draws the cursor follower over a block of background text.
type CursorCanvas struct {
	follower      anim.Follower
	width, height int
	background    []string
	inside        bool
}

// NewCursorCanvas creates a canvas showing background centred.
func NewCursorCanvas(background ...string) *CursorCanvas {
	return &CursorCanvas{background: background}
}

// SetSize sets the canvas size in cells.
func (c *CursorCanvas) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Height returns the canvas height.
func (c *CursorCanvas) Height() int {
	return c.height
}

// MoveTo records the pointer position in canvas cells. Positions outside the
// canvas hide the pointer marker but the follower keeps chasing.
func (c *CursorCanvas) MoveTo(x, y int) {
	c.inside = x >= 0 && y >= 0 && x < c.width && y < c.height
	c.follower.MoveTo(float64(x), float64(y))
}

// Step advances the follower by one frame.
func (c *CursorCanvas) Step() {
	c.follower.Step()
}

// Animating reports whether the follower is still moving.
func (c *CursorCanvas) Animating() bool {
	return !c.follower.Settled()
}

// Follower exposes the follower state.
func (c *CursorCanvas) Follower() *anim.Follower {
	return &c.follower
}

// glyph picks a character that reads as the follower squashed along its
// heading. Rows are down, so positive angles point down the screen.
func glyph(along, angle float64) string {
	if along < 1.15 {
		return "●"
	}
	a := math.Mod(angle+360, 180)
	switch {
	case a < 22.5 || a >= 157.5:
		if along > 1.35 {
			return "━━"
		}
		return "━"
	case a < 67.5:
		return "╲"
	case a < 112.5:
		return "┃"
	default:
		return "╱"
	}
}

// View renders the canvas.
func (c *CursorCanvas) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	rows := make([][]string, c.height)
	for y := range rows {
		rows[y] = make([]string, c.width)
		for x := range rows[y] {
			rows[y][x] = " "
		}
	}

	top := (c.height - len(c.background)) / 2
	for i, text := range c.background {
		y := top + i
		if y < 0 || y >= c.height {
			continue
		}
		text = runewidth.Truncate(text, c.width, "")
		x := (c.width - runewidth.StringWidth(text)) / 2
		for _, r := range text {
			if x >= c.width {
				break
			}
			rows[y][x] = string(r)
			w := runewidth.RuneWidth(r)
			for j := 1; j < w && x+j < c.width; j++ {
				rows[y][x+j] = ""
			}
			x += w
		}
	}

	if c.inside {
		p := c.follower.Pointer()
		c.put(rows, int(p.X), int(p.Y), pointerStyle.Render("·"))
	}

	pos := c.follower.Position()
	along, _ := c.follower.Scale()
	x, y := int(math.Round(pos.X)), int(math.Round(pos.Y))
	for _, r := range glyph(along, c.follower.Angle()) {
		c.put(rows, x, y, followerStyle.Render(string(r)))
		x++
	}

	lines := make([]string, c.height)
	for y, row := range rows {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func (c *CursorCanvas) put(rows [][]string, x, y int, cell string) {
	if y < 0 || y >= len(rows) || x < 0 || x >= len(rows[y]) {
		return
	}
	rows[y][x] = cell
}
