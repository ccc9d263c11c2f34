package engine

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/seasonscape/pkg/config"
	"github.com/gonewx/seasonscape/pkg/game"
)

// 渐变纹理尺寸。辉光/薄雾/光晕都用同一张径向渐变贴图缩放着色绘制，
// 避免每帧逐像素计算渐变。
const glowTexSize = 64

// 落叶装饰图片路径。缺失时程序化形状兜底。
var leafImagePaths = []string{
	"assets/images/leaf1.png",
	"assets/images/leaf2.png",
}

// Renderer 负责把每种粒子画成各自的视觉形态。
// 渲染只读取粒子状态，从不修改物理字段。
type Renderer struct {
	glow   *ebiten.Image // 白色径向渐变贴图，着色后复用
	leaves []*ImageSlot  // 落叶图片格子，后台加载
}

// NewRenderer 创建渲染器并发起落叶图片的后台加载。
// rm 为 nil 时跳过图片加载，所有落叶使用程序化形状。
func NewRenderer(rm *game.ResourceManager) *Renderer {
	r := &Renderer{glow: buildGlowImage()}
	for _, path := range leafImagePaths {
		slot := &ImageSlot{}
		slot.LoadFrom(rm, path)
		r.leaves = append(r.leaves, slot)
	}
	return r
}

// buildGlowImage 生成一张白色径向渐变贴图（中心不透明，边缘透明）。
func buildGlowImage() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, glowTexSize, glowTexSize))
	center := float64(glowTexSize) / 2
	for y := 0; y < glowTexSize; y++ {
		for x := 0; x < glowTexSize; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			d := math.Hypot(dx, dy) / center
			a := 1.0 - d
			if a < 0 {
				a = 0
			}
			a *= a // 二次衰减，边缘更柔
			v := uint8(a * 255)
			// 预乘 alpha：各通道等于 alpha 即纯白
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return ebiten.NewImageFromImage(img)
}

// Draw 渲染一帧：光晕（仅夏季）→ 粒子 → 涟漪。
func (r *Renderer) Draw(screen *ebiten.Image, sim *Simulation) {
	if sim.Season() == SeasonSummer {
		for _, f := range sim.Flares() {
			r.drawFlare(screen, f)
		}
	}

	for _, p := range sim.Particles() {
		r.drawParticle(screen, p)
	}

	for _, rp := range sim.Ripples() {
		vector.StrokeCircle(screen,
			float32(rp.X), float32(rp.Y), float32(rp.Radius),
			1.5, color.NRGBA{R: 200, G: 225, B: 245, A: uint8(rp.Opacity * 255)}, true)
	}
}

// drawParticle 按种类分派到对应的绘制方式。
func (r *Renderer) drawParticle(screen *ebiten.Image, p Particle) {
	switch p.Kind {
	case KindPetal:
		r.drawPetal(screen, p)
	case KindDust:
		r.drawDust(screen, p)
	case KindLeaf:
		r.drawLeaf(screen, p)
	case KindRain:
		r.drawRain(screen, p)
	case KindMist:
		r.drawGlow(screen, p.X, p.Y, p.Radius, p.Color, p.Opacity, false)
	case KindDewdrop:
		r.drawDewdrop(screen, p)
	case KindSnow:
		vector.DrawFilledCircle(screen,
			float32(p.X), float32(p.Y), float32(p.Radius), nrgba(p, 1), true)
	case KindEmber:
		r.drawGlow(screen, p.X, p.Y, p.Radius*3, p.Color, p.Opacity, true)
	default:
		vector.DrawFilledCircle(screen,
			float32(p.X), float32(p.Y), float32(p.Radius), nrgba(p, 1), true)
	}
}

// drawFlare 绘制一个夏季光晕：加法混合的径向渐变，中心绕锚点公转。
func (r *Renderer) drawFlare(screen *ebiten.Image, f Flare) {
	ox := f.X + math.Cos(f.Phase)*f.OrbitRadius
	oy := f.Y + math.Sin(f.Phase)*f.OrbitRadius
	warm := config.RGB{R: 255, G: 238, B: 205}
	r.drawGlow(screen, ox, oy, f.Radius, warm, 0.3, true)
	r.drawGlow(screen, ox, oy, f.Radius*0.35, warm, 0.5, true)
}

// drawGlow 以渐变贴图绘制一个着色辉光。additive 为 true 时使用
// 加法混合（发光叠加），否则普通 alpha 混合（薄雾）。
func (r *Renderer) drawGlow(screen *ebiten.Image, x, y, radius float64, c config.RGB, alpha float64, additive bool) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := radius * 2 / glowTexSize
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-radius, y-radius)
	op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
	op.ColorScale.ScaleAlpha(float32(alpha))
	if additive {
		op.Blend = ebiten.BlendLighter
	}
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.glow, op)
}

// drawPetal 绘制花瓣：按朝向角旋转的泪滴形（两段二次贝塞尔曲线）。
func (r *Renderer) drawPetal(screen *ebiten.Image, p Particle) {
	sin, cos := math.Sincos(p.Angle)
	pt := func(lx, ly float64) (float32, float32) {
		return float32(p.X + lx*cos - ly*sin), float32(p.Y + lx*sin + ly*cos)
	}

	var path vector.Path
	tipX, tipY := pt(0, -p.Radius)
	baseX, baseY := pt(0, p.Radius)
	path.MoveTo(tipX, tipY)
	cx, cy := pt(p.Radius*0.95, -p.Radius*0.2)
	path.QuadTo(cx, cy, baseX, baseY)
	cx, cy = pt(-p.Radius*0.95, -p.Radius*0.2)
	path.QuadTo(cx, cy, tipX, tipY)
	path.Close()

	fillPath(screen, &path, nrgba(p, 1))
}

// drawDust 绘制光尘：实心核心点加一圈大而淡的辉光。
func (r *Renderer) drawDust(screen *ebiten.Image, p Particle) {
	vector.DrawFilledCircle(screen,
		float32(p.X), float32(p.Y), float32(p.Radius), nrgba(p, 1), true)
	r.drawGlow(screen, p.X, p.Y, p.Radius*3, p.Color, p.Opacity*0.25, true)
}

// drawLeaf 绘制落叶。优先使用已加载的图片资源；图片未就绪或缺失时
// 退化为程序化的叶形曲线。旋转角由朝向角的正弦驱动（来回摇摆）。
func (r *Renderer) drawLeaf(screen *ebiten.Image, p Particle) {
	tilt := math.Sin(p.Angle) * 0.8

	// 以不变的深度系数选择图片，确保同一粒子始终用同一张叶子
	idx := int(p.Z*1000) % len(r.leaves)
	if img := r.leaves[idx].Get(); img != nil {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Rotate(tilt)
		s := p.Radius * 2 / float64(w)
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(p.X, p.Y)
		op.ColorScale.ScaleAlpha(float32(p.Opacity))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
		return
	}

	// 程序化叶形：两段曲线围成的扁椭圆
	sin, cos := math.Sincos(tilt)
	pt := func(lx, ly float64) (float32, float32) {
		return float32(p.X + lx*cos - ly*sin), float32(p.Y + lx*sin + ly*cos)
	}
	var path vector.Path
	leftX, leftY := pt(-p.Radius, 0)
	rightX, rightY := pt(p.Radius, 0)
	path.MoveTo(leftX, leftY)
	cx, cy := pt(0, -p.Radius*0.7)
	path.QuadTo(cx, cy, rightX, rightY)
	cx, cy = pt(0, p.Radius*0.7)
	path.QuadTo(cx, cy, leftX, leftY)
	path.Close()
	fillPath(screen, &path, nrgba(p, 1))
}

// drawRain 绘制雨线：沿速度方向拉长的两段线，尾段更淡形成渐变。
func (r *Renderer) drawRain(screen *ebiten.Image, p Particle) {
	dx := p.VX * 4
	dy := 6 + p.VY*6
	x0, y0 := float32(p.X), float32(p.Y)
	x1, y1 := float32(p.X+dx), float32(p.Y+dy)
	width := float32(p.Radius)

	vector.StrokeLine(screen, x0, y0, x1, y1, width, nrgba(p, 1), true)
	// 尾段：再延伸一半长度，透明度减半
	x2, y2 := float32(p.X+dx*1.5), float32(p.Y+dy*1.5)
	vector.StrokeLine(screen, x1, y1, x2, y2, width, nrgba(p, 0.4), true)
}

// drawDewdrop 绘制露珠：实心圆加左上角一个小高光点。
func (r *Renderer) drawDewdrop(screen *ebiten.Image, p Particle) {
	vector.DrawFilledCircle(screen,
		float32(p.X), float32(p.Y), float32(p.Radius), nrgba(p, 1), true)
	vector.DrawFilledCircle(screen,
		float32(p.X-p.Radius*0.3), float32(p.Y-p.Radius*0.3), float32(p.Radius*0.3),
		color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Min(p.Opacity*1.4, 1) * 255)}, true)
}

// nrgba 把粒子颜色与不透明度（乘以 factor）转成 color.NRGBA。
func nrgba(p Particle, factor float64) color.NRGBA {
	a := p.Opacity * factor
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(a * 255)}
}

// whiteImage 给 vector 路径填充用的 1x1 白色贴图源。
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// fillPath 以指定颜色填充一条矢量路径。
func fillPath(dst *ebiten.Image, path *vector.Path, clr color.NRGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr * ca
		vs[i].ColorG = cg * ca
		vs[i].ColorB = cb * ca
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
