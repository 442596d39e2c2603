// Package captcha 生成图片验证码
// 文字使用 basicfont 绘制后放大到目标尺寸，再叠加干扰点和干扰线，输出 JPEG
package captcha

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand/v2"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"news_server/internal/config"
	"news_server/pkg/util/random"
)

// ContentType 验证码图片的 Content-Type
const ContentType = "image/jpg"

const (
	glyphWidth  = 7  // basicfont.Face7x13 字宽
	glyphHeight = 13 // basicfont.Face7x13 字高
	glyphPad    = 2
	jpegQuality = 85
)

// Generator 图片验证码生成器
type Generator interface {
	// Generate 返回验证码名称（下游不使用）、文字内容和图片字节
	Generate() (name string, text string, image []byte, err error)
}

// ImageGenerator 基于 golang.org/x/image 的验证码生成器
type ImageGenerator struct {
	length int
	width  int
	height int
}

var _ Generator = (*ImageGenerator)(nil)

// New 创建验证码生成器
func New(cfg config.CaptchaConfig) *ImageGenerator {
	g := &ImageGenerator{length: cfg.Length, width: cfg.Width, height: cfg.Height}
	if g.length <= 0 {
		g.length = 4
	}
	if g.width <= 0 {
		g.width = 120
	}
	if g.height <= 0 {
		g.height = 40
	}
	return g
}

// Generate 生成一张新的验证码图片
func (g *ImageGenerator) Generate() (string, string, []byte, error) {
	text, err := random.GetCaptchaText(g.length)
	if err != nil {
		return "", "", nil, fmt.Errorf("captcha text: %w", err)
	}
	img := g.render(text)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", "", nil, fmt.Errorf("encode captcha: %w", err)
	}
	return uuid.NewString(), text, buf.Bytes(), nil
}

// render 先在小画布上逐字绘制，再缩放到目标尺寸
func (g *ImageGenerator) render(text string) *image.RGBA {
	small := image.NewRGBA(image.Rect(0, 0, len(text)*(glyphWidth+glyphPad)+glyphPad, glyphHeight+glyphPad*2))
	draw.Draw(small, small.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, ch := range text {
		d := &font.Drawer{
			Dst:  small,
			Src:  image.NewUniform(randomDarkColor()),
			Face: basicfont.Face7x13,
			// 每个字上下随机偏移 1 像素
			Dot: fixed.P(glyphPad+i*(glyphWidth+glyphPad), glyphHeight-1+rand.IntN(3)),
		}
		d.DrawString(string(ch))
	}

	dst := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)

	addNoise(dst)
	return dst
}

// addNoise 叠加干扰点和两条干扰线
func addNoise(img *image.RGBA) {
	b := img.Bounds()
	dots := b.Dx() * b.Dy() / 20
	for i := 0; i < dots; i++ {
		img.Set(b.Min.X+rand.IntN(b.Dx()), b.Min.Y+rand.IntN(b.Dy()), randomDarkColor())
	}
	for i := 0; i < 2; i++ {
		drawLine(img,
			b.Min.X, b.Min.Y+rand.IntN(b.Dy()),
			b.Max.X-1, b.Min.Y+rand.IntN(b.Dy()),
			randomDarkColor())
	}
}

// drawLine Bresenham 画线
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func randomDarkColor() color.RGBA {
	return color.RGBA{
		R: uint8(rand.IntN(150)),
		G: uint8(rand.IntN(150)),
		B: uint8(rand.IntN(150)),
		A: 0xff,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
