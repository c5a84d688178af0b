package cardimage

// Package cardimage composes business-card images offscreen. Layout is
// specified in logical units against a 342x195 base card (the 1050:600
// aspect used by the card designer) and scaled up to the requested pixel
// width, so exports stay sharp without changing the geometry.

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/smartwave/smartwave-go/internal/domain/card"
	apperrors "github.com/smartwave/smartwave-go/internal/errors"
)

// Logical layout constants, in base-card units.
const (
	baseWidth  = 342
	baseHeight = 195

	pad          = 20
	photoSize    = 70
	logoSize     = 40
	qrSize       = 120
	cornerRadius = 16
	combinedGap  = 16
)

// DefaultWidth renders at roughly 3x the logical size, matching the pixel
// density of on-device captures.
const DefaultWidth = 1050

// Card bundles everything the renderer needs for one export. Photo and
// Logo are optional; a nil Photo falls back to the initials block. QR is
// required for back and combined renders.
type Card struct {
	Profile card.Profile
	Theme   card.Theme
	Photo   image.Image
	Logo    image.Image
	QR      image.Image
}

// Renderer draws cards at a fixed pixel width.
type Renderer struct {
	width  int
	height int
	scale  float64

	nameFace  font.Face
	subFace   font.Face
	bodyFace  font.Face
	smallFace font.Face
	labelFace font.Face
}

// NewRenderer builds a renderer for the given pixel width. width <= 0
// selects DefaultWidth.
func NewRenderer(width int) (*Renderer, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	scale := float64(width) / float64(baseWidth)
	r := &Renderer{
		width: width,
		// Height follows the designer's 1050:600 aspect, not the rounded
		// logical base, so the default export lands on exactly 1050x600.
		height: int(float64(width)*600.0/1050.0 + 0.5),
		scale:  scale,
	}

	var err error
	if r.nameFace, err = newFace(gobold.TTF, 20*scale); err != nil {
		return nil, err
	}
	if r.subFace, err = newFace(goitalic.TTF, 13*scale); err != nil {
		return nil, err
	}
	if r.bodyFace, err = newFace(goregular.TTF, 13*scale); err != nil {
		return nil, err
	}
	if r.smallFace, err = newFace(goregular.TTF, 11*scale); err != nil {
		return nil, err
	}
	if r.labelFace, err = newFace(goregular.TTF, 10*scale); err != nil {
		return nil, err
	}
	return r, nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "parse card font")
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build card font face")
	}
	return face, nil
}

// Size returns the pixel dimensions of a single card face.
func (r *Renderer) Size() (w, h int) {
	return r.width, r.height
}

func (r *Renderer) px(v float64) float64 {
	return v * r.scale
}

// RenderFront draws the identity side: photo or initials block, name,
// title, company, logo, and the contact summary along the bottom edge.
func (r *Renderer) RenderFront(c Card) (image.Image, error) {
	dc := gg.NewContext(r.width, r.height)
	r.drawFront(dc, c)
	return dc.Image(), nil
}

// RenderBack draws the QR side: the code on a white panel with the scan
// hint beneath it.
func (r *Renderer) RenderBack(c Card) (image.Image, error) {
	if c.QR == nil {
		return nil, apperrors.GenerationFailed("render card back: missing QR image")
	}
	dc := gg.NewContext(r.width, r.height)
	r.drawBack(dc, c)
	return dc.Image(), nil
}

// RenderCombined stacks the front above the back on one canvas.
func (r *Renderer) RenderCombined(c Card) (image.Image, error) {
	if c.QR == nil {
		return nil, apperrors.GenerationFailed("render combined card: missing QR image")
	}
	gap := int(r.px(combinedGap))
	dc := gg.NewContext(r.width, r.height*2+gap)

	front := gg.NewContext(r.width, r.height)
	r.drawFront(front, c)
	dc.DrawImage(front.Image(), 0, 0)

	back := gg.NewContext(r.width, r.height)
	r.drawBack(back, c)
	dc.DrawImage(back.Image(), 0, r.height+gap)

	return dc.Image(), nil
}

// RenderCapture is the degraded combined render used when remote assets
// cannot be fetched: the photo and logo are dropped and the initials
// block stands in, but the QR side is intact so the card stays scannable.
func (r *Renderer) RenderCapture(c Card) (image.Image, error) {
	c.Photo = nil
	c.Logo = nil
	return r.RenderCombined(c)
}

func (r *Renderer) drawFront(dc *gg.Context, c Card) {
	dc.SetHexColor(c.Theme.FrontBackground)
	dc.DrawRoundedRectangle(0, 0, float64(r.width), float64(r.height), r.px(cornerRadius))
	dc.Fill()

	// Photo circle, or the initials block when no photo resolved.
	px, py, pd := r.px(pad), r.px(pad), r.px(photoSize)
	cx, cy := px+pd/2, py+pd/2
	if c.Photo != nil {
		dc.Push()
		dc.DrawCircle(cx, cy, pd/2)
		dc.Clip()
		dc.DrawImage(scaleCover(c.Photo, int(pd), int(pd)), int(px), int(py))
		dc.ResetClip()
		dc.Pop()
	} else {
		dc.SetHexColor(c.Theme.TextMuted)
		dc.DrawCircle(cx, cy, pd/2)
		dc.Fill()
		if initial := c.Profile.Initial(); initial != "" {
			dc.SetHexColor(c.Theme.FrontBackground)
			dc.SetFontFace(r.nameFace)
			dc.DrawStringAnchored(initial, cx, cy, 0.5, 0.5)
		}
	}

	// Identity block to the right of the photo.
	tx := px + pd + r.px(14)
	dc.SetHexColor(c.Theme.Text)
	dc.SetFontFace(r.nameFace)
	dc.DrawStringAnchored(c.Profile.FullName(), tx, py+r.px(16), 0, 0.5)

	dc.SetHexColor(c.Theme.TextMuted)
	dc.SetFontFace(r.subFace)
	if c.Profile.Title != "" {
		dc.DrawStringAnchored(c.Profile.Title, tx, py+r.px(38), 0, 0.5)
	}
	dc.SetFontFace(r.bodyFace)
	if c.Profile.Company != "" {
		dc.DrawStringAnchored(c.Profile.Company, tx, py+r.px(56), 0, 0.5)
	}

	if c.Logo != nil {
		lx := float64(r.width) - r.px(pad) - r.px(logoSize)
		ls := int(r.px(logoSize))
		dc.Push()
		dc.DrawRoundedRectangle(lx, py, float64(ls), float64(ls), r.px(6))
		dc.Clip()
		dc.DrawImage(scaleCover(c.Logo, ls, ls), int(lx), int(py))
		dc.ResetClip()
		dc.Pop()
	}

	// Contact summary, bottom-up from the lower edge.
	lines := contactLines(c.Profile)
	dc.SetHexColor(c.Theme.TextMuted)
	dc.SetFontFace(r.smallFace)
	baseY := float64(r.height) - r.px(pad)
	lineGap := r.px(14)
	for i, line := range lines {
		y := baseY - float64(len(lines)-1-i)*lineGap
		dc.DrawStringAnchored(line, px, y, 0, 1)
	}
}

func (r *Renderer) drawBack(dc *gg.Context, c Card) {
	dc.SetHexColor(c.Theme.BackBackground)
	dc.DrawRoundedRectangle(0, 0, float64(r.width), float64(r.height), r.px(cornerRadius))
	dc.Fill()

	qs := int(r.px(qrSize))
	panel := float64(qs) + r.px(16)
	panelX := (float64(r.width) - panel) / 2
	panelY := (float64(r.height) - panel - r.px(24)) / 2

	dc.SetHexColor("#ffffff")
	dc.DrawRoundedRectangle(panelX, panelY, panel, panel, r.px(8))
	dc.Fill()

	qrX := int(panelX + r.px(8))
	qrY := int(panelY + r.px(8))
	dc.DrawImage(scaleNearest(c.QR, qs, qs), qrX, qrY)

	dc.SetHexColor(c.Theme.Text)
	dc.SetFontFace(r.labelFace)
	labelY := panelY + panel + r.px(14)
	dc.DrawStringAnchored("Scan to save contact", float64(r.width)/2, labelY, 0.5, 0.5)

	if c.Profile.ShortURL != "" {
		dc.SetHexColor(c.Theme.TextMuted)
		dc.SetFontFace(r.smallFace)
		dc.DrawStringAnchored(c.Profile.ShortURL, float64(r.width)/2, labelY+r.px(14), 0.5, 0.5)
	}
}

// contactLines picks the front-face contact summary: work email over the
// account email, then mobile, then website.
func contactLines(p card.Profile) []string {
	lines := make([]string, 0, 3)
	if p.WorkEmail != "" {
		lines = append(lines, p.WorkEmail)
	} else if p.UserEmail != "" {
		lines = append(lines, p.UserEmail)
	}
	if p.Mobile != "" {
		lines = append(lines, p.Mobile)
	}
	if p.Website != "" {
		lines = append(lines, p.Website)
	}
	return lines
}

// EncodePNG serializes a rendered card.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeGenerationFailed, fmt.Sprintf("encode card png (%dx%d)", img.Bounds().Dx(), img.Bounds().Dy()))
	}
	return buf.Bytes(), nil
}
