package skyflock

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// controlsHint is the HUD line at the top of the canvas.
const controlsHint = "Arrows: fly    Space/Shift: boost    1-4: switch flyer"

// newHUDFace returns the bitmap face used for every HUD string.
func newHUDFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// panelTitle is the first line of an agent's score panel: its select key and
// name.
func panelTitle(a *Agent) string {
	return strconv.Itoa(a.ID+1) + "  " + a.Name
}

// panelScore is the second line of an agent's score panel.
func panelScore(a *Agent) string {
	return "Score: " + strconv.Itoa(a.Score)
}

// drawHUDText draws a CommandText with its top-left corner at c.Pos.
func drawHUDText(screen *ebiten.Image, face text.Face, c *DrawCommand) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(c.Pos.X, c.Pos.Y)
	op.ColorScale.ScaleWithColor(c.Color.toRGBA())
	text.Draw(screen, c.Text, face, op)
}
