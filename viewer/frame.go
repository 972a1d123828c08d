package viewer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/netisu/objview"
	"github.com/netisu/objview/session"
)

// glEmitter sends vertices to the current GL context.
type glEmitter struct{}

func (glEmitter) Begin(p objview.Primitive) {
	switch p {
	case objview.Points:
		gl.Begin(gl.POINTS)
	case objview.Lines:
		gl.Begin(gl.LINES)
	default:
		gl.Begin(gl.TRIANGLES)
	}
}

func (glEmitter) Vertex(v objview.Vertex) {
	gl.Vertex3d(v.X, v.Y, v.Z)
}

func (glEmitter) End() {
	gl.End()
}

// frame redraws one object every iteration of the window loop.
type frame struct {
	req    session.Request
	cfg    objview.Config
	camera objview.Camera
	dc     *objview.Context
	log    *slog.Logger
	warn   *objview.WarnOnce
	shots  int
}

func newFrame(r session.Request, cfg objview.Config, log *slog.Logger) *frame {
	fr := &frame{
		req:    r,
		cfg:    cfg,
		camera: cfg.Cam(),
		log:    log,
	}
	fr.warn = objview.NewWarnOnce(func(idx objview.Index) {
		fr.log.Warn("skipping invalid vertex index", "index", int(idx), "object", fr.req.Object.Name)
	})
	fr.dc = objview.NewContext(glEmitter{}, r.Mode)
	fr.dc.PointSize = cfg.PointSize
	fr.dc.Warn = fr.warn.Warn
	return fr
}

func (fr *frame) render(width, height int) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	proj := fr.camera.Projection(aspect)
	view := fr.camera.View()
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixd(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixd(&view[0])

	switch fr.dc.Mode {
	case objview.PointCloud:
		gl.PointSize(float32(fr.dc.PointSize))
	case objview.Wireframe:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	default:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	fr.dc.DrawObject(fr.req.Object, fr.req.Model.Vertices)
}

// reload decodes the model file again and keeps showing the same object
// name. The current object stays on screen if the new file lacks it.
func (fr *frame) reload() {
	model, obj, err := objview.Reload(fr.req.Path, fr.req.Object.Name)
	if err != nil {
		fr.log.Warn("reload failed", "file", fr.req.Path, "err", err)
		return
	}
	fr.req.Model, fr.req.Object = model, obj
	fr.warn.Reset()
	fr.log.Info("reloaded", "file", fr.req.Path, "vertices", len(model.Vertices))
}

func (fr *frame) screenshot(width, height int) {
	pix := make([]uint8, width*height*4)
	gl.ReadBuffer(gl.FRONT)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	im, err := objview.FramebufferImage(pix, width, height)
	if err != nil {
		fr.log.Warn("screenshot failed", "err", err)
		return
	}
	fr.shots++
	path := fmt.Sprintf("%s-%d.png", fr.req.Object.Name, fr.shots)
	if err := objview.SavePNG(path, objview.Thumbnail(im, fr.cfg.ScreenshotSize)); err != nil {
		fr.log.Warn("screenshot failed", "err", err)
		return
	}
	fr.log.Info("saved screenshot", "file", path)
}
