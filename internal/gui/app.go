package gui

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/san-kum/foldwall/internal/config"
	"github.com/san-kum/foldwall/internal/gui/scene"
	"github.com/san-kum/foldwall/internal/logger"
	"github.com/san-kum/foldwall/internal/texture"
	"github.com/san-kum/foldwall/internal/wall"
)

const (
	windowWidth     = 1280
	windowHeight    = 720
	maxTextureWidth = 2048
	listTop         = 60
	rowHeight       = 20
)

var (
	colBg     = color.RGBA{10, 10, 12, 255}
	colCursor = color.RGBA{40, 40, 60, 255}
)

// Game is the window host: an image picker, then the folding wall drawn
// from per-strip sub-images of one shared texture.
type Game struct {
	cfg        *config.Config
	wall       *wall.Wall
	sel        *scene.Selection
	sheet      *texture.Sheet
	source     *ebiten.Image
	views      []*ebiten.Image
	placements []scene.Placement
	elapsed    float64
	paused     bool
	width      int
	height     int
	log        *zap.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	w, err := wall.New(cfg.WallConfig())
	if err != nil {
		return nil, err
	}
	w.SetWorkers(cfg.Run.Workers)

	names := make([]string, len(cfg.Texture.Paths))
	for i, p := range cfg.Texture.Paths {
		names[i] = filepath.Base(p)
	}

	g := &Game{
		cfg:    cfg,
		wall:   w,
		sel:    scene.NewSelection(names),
		sheet:  texture.NewSheet(nil, w.Layouts()),
		width:  windowWidth,
		height: windowHeight,
		log:    logger.Named("gui"),
	}
	if !g.sel.Choosing() {
		g.use(-1)
	}
	return g, nil
}

// use uploads the chosen texture and cuts one sub-image per strip. Index
// -1, or a file that fails to load, gives the placeholder.
func (g *Game) use(idx int) {
	var tex *texture.Texture
	if idx >= 0 {
		path := g.cfg.Texture.Paths[idx]
		t, err := texture.Load(path)
		if err != nil {
			g.log.Warn("texture load failed, using placeholder", zap.String("path", path), zap.Error(err))
		} else {
			tex = t
		}
	}
	if tex != nil && tex.Bounds().Dx() > maxTextureWidth {
		b := tex.Bounds()
		h := b.Dy() * maxTextureWidth / b.Dx()
		tex = &texture.Texture{Name: tex.Name, Image: texture.Resample(tex.Image, maxTextureWidth, max(1, h))}
	}
	g.sheet.SetTexture(tex)

	if g.source != nil {
		g.source.Deallocate()
	}
	g.source = ebiten.NewImageFromImage(g.sheet.Texture().Image)
	g.cut()

	bounds := g.source.Bounds()
	g.log.Info("texture ready",
		zap.String("name", g.sheet.Texture().Name),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Int("strips", len(g.views)))
}

// cut slices the uploaded texture into one sub-image per strip view.
func (g *Game) cut() {
	bounds := g.source.Bounds()
	views := g.sheet.Views()
	g.views = make([]*ebiten.Image, len(views))
	for i, v := range views {
		g.views[i] = g.source.SubImage(v.Rect(bounds)).(*ebiten.Image)
	}
}

// restrip changes the strip count and recuts the texture for the new views.
func (g *Game) restrip(delta int) {
	changed, err := scene.Restrip(g.wall, g.sheet, delta)
	if err != nil {
		g.log.Warn("restrip failed", zap.Error(err))
		return
	}
	if changed {
		g.cut()
		g.log.Info("strips changed", zap.Int("strips", g.wall.Len()))
	}
}

func (g *Game) reset() {
	g.wall.Reset()
	g.elapsed = 0
	g.sel.Reopen()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.sel.Choosing() {
		g.updateSelection()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.restrip(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.restrip(-1)
	}
	if g.paused {
		return nil
	}

	dt := 1 / float64(ebiten.TPS())
	g.elapsed += dt
	cx, cy := ebiten.CursorPosition()
	px, py := scene.Pointer(cx, cy, g.width, g.height)
	g.wall.Tick(wall.InputSample{PointerX: px, PointerY: py, Elapsed: g.elapsed, Delta: dt})
	return nil
}

func (g *Game) updateSelection() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.sel.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.sel.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.use(g.sel.Choose())
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		_, cy := ebiten.CursorPosition()
		if g.sel.Pick(g.sel.RowAt(cy, listTop, rowHeight)) {
			g.use(g.sel.Chosen())
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBg)

	if g.sel.Choosing() {
		g.drawSelection(screen)
		return
	}

	vp := scene.NewViewport(g.wall.Config(), g.width, g.height)
	g.placements = vp.PlaceAll(g.wall.Strips(), g.placements)
	for _, p := range g.placements {
		if !p.Visible || p.Index >= len(g.views) {
			continue
		}
		img := g.views[p.Index]
		b := img.Bounds()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(p.Width/float64(b.Dx()), p.Height/float64(b.Dy()))
		op.GeoM.Translate(p.CenterX, p.CenterY)
		s := float32(p.Shade)
		op.ColorScale.Scale(s, s, s, 1)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	in := g.wall.LastInput()
	status := "running"
	if g.paused {
		status = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"foldwall  %s  %.0f fps  %d strips\npointer %+.2f %+.2f  compression %.2f\nR: reset / pick image   Space: pause   [ ]: strips   Esc: quit",
		status, ebiten.ActualFPS(), g.wall.Len(), in.PointerX, in.PointerY, wall.Compression(in.PointerX)))
}

func (g *Game) drawSelection(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Choose an image (Up/Down + Enter, or click)", 20, 20)
	for i, name := range g.sel.Names() {
		y := listTop + i*rowHeight
		if i == g.sel.Cursor() {
			ebitenutil.DrawRect(screen, 14, float64(y-2), float64(g.width-28), rowHeight, colCursor)
		}
		ebitenutil.DebugPrintAt(screen, name, 20, y)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("foldwall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Run.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
