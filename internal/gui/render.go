package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface draws onto a raylib render texture. Calls must happen between
// rl.BeginTextureMode and rl.EndTextureMode on the same target.
type Surface struct {
	Target        rl.RenderTexture2D
	width, height int
	path          []rl.Vector2
	pen           rl.Vector2
}

func NewSurface(width, height int) *Surface {
	return &Surface{
		Target: rl.LoadRenderTexture(int32(width), int32(height)),
		width:  width,
		height: height,
	}
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) FillRect(x, y, w, h int) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), ColCell)
}

func (s *Surface) ClearRect(x, y, w, h int) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		rl.ClearBackground(ColBg)
		return
	}
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), ColBg)
}

func (s *Surface) BeginPath() { s.path = s.path[:0] }

func (s *Surface) MoveTo(x, y int) { s.pen = rl.NewVector2(float32(x), float32(y)) }

func (s *Surface) LineTo(x, y int) {
	to := rl.NewVector2(float32(x), float32(y))
	s.path = append(s.path, s.pen, to)
	s.pen = to
}

func (s *Surface) Stroke() {
	for i := 0; i+1 < len(s.path); i += 2 {
		rl.DrawLineV(s.path[i], s.path[i+1], ColGrid)
	}
}

// draw blits the texture at (x, y). Render textures are stored upside
// down, hence the negative source height.
func (s *Surface) draw(x, y int) {
	src := rl.NewRectangle(0, 0, float32(s.width), -float32(s.height))
	rl.DrawTextureRec(s.Target.Texture, src, rl.NewVector2(float32(x), float32(y)), rl.White)
}

func (s *Surface) Unload() { rl.UnloadRenderTexture(s.Target) }
