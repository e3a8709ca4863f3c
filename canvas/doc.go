// Package canvas is a small software 2D drawing layer: a raster pixel
// buffer (Pixmap) plus a drawing context (Context) with an affine
// transform stack, vector paths, solid and gradient brushes, and
// source-over compositing.
//
// All rendering is CPU-side and deterministic: the same sequence of
// drawing calls on the same canvas produces byte-identical pixels.
// Coordinates are in pixels with the origin at the top-left corner and
// the Y axis pointing down.
//
// Typical usage:
//
//	dc, err := canvas.NewContext(800, 600)
//	if err != nil {
//		return err
//	}
//	dc.SetRGBA(0.2, 0.5, 0.3, 1)
//	dc.DrawCircle(400, 300, 120)
//	dc.Fill()
//	if err := dc.SavePNG("out.png"); err != nil {
//		return err
//	}
package canvas
