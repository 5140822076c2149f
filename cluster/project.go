package cluster

import "math"

// Projector maps a geographic coordinate to screen pixels for a given
// viewport. Implementations must be deterministic for a fixed viewport
// and free of side effects; the engine calls Project once per point per
// clustering pass.
type Projector interface {
	Project(longitude, latitude float64, vp Viewport) (x, y float64)
}

// WebMercator is the default Projector: a viewport-centered web-mercator
// projection with fractional zoom and bearing rotation. Pitch is carried
// on the Viewport but not modeled here; foreshortening does not change
// which points fall within a pixel radius of each other on the
// unpitched plane, which is what the pin layers reconcile against.
type WebMercator struct {
	// TileSize is the world tile extent in pixels at zoom 0.
	// Zero means 512.
	TileSize float64
}

func (m WebMercator) tileSize() float64 {
	if m.TileSize <= 0 {
		return 512
	}
	return m.TileSize
}

// worldSize is the width of the full mercator plane in pixels at zoom.
func (m WebMercator) worldSize(zoom float64) float64 {
	return m.tileSize() * math.Pow(2, zoom)
}

// Project converts lng/lat to container pixels. The viewport center
// lands on (Width/2, Height/2).
func (m WebMercator) Project(longitude, latitude float64, vp Viewport) (float64, float64) {
	ws := m.worldSize(vp.Zoom)
	px, py := mercator(longitude, latitude, ws)
	cx, cy := mercator(vp.Longitude, vp.Latitude, ws)

	dx, dy := px-cx, py-cy
	if vp.Bearing != 0 {
		sin, cos := math.Sincos(-vp.Bearing * math.Pi / 180)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}
	return dx + vp.Width/2, dy + vp.Height/2
}

// Unproject converts container pixels back to lng/lat. Inverse of
// Project for any finite screen position.
func (m WebMercator) Unproject(x, y float64, vp Viewport) (longitude, latitude float64) {
	ws := m.worldSize(vp.Zoom)
	cx, cy := mercator(vp.Longitude, vp.Latitude, ws)

	dx, dy := x-vp.Width/2, y-vp.Height/2
	if vp.Bearing != 0 {
		sin, cos := math.Sincos(vp.Bearing * math.Pi / 180)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}
	return unmercator(cx+dx, cy+dy, ws)
}

// mercator converts lng/lat to world-plane pixels.
func mercator(lng, lat float64, worldSize float64) (float64, float64) {
	sin := math.Sin(lat * math.Pi / 180)
	x := (lng + 180) / 360
	y := 0.5 - 0.25*math.Log((1+sin)/(1-sin))/math.Pi
	return x * worldSize, y * worldSize
}

// unmercator converts world-plane pixels back to lng/lat.
func unmercator(x, y float64, worldSize float64) (float64, float64) {
	lng := x/worldSize*360 - 180
	lat := math.Atan(math.Sinh(math.Pi*(1-2*y/worldSize))) * 180 / math.Pi
	return lng, lat
}
