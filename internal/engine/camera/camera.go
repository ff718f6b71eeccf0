// Package camera provides the orbit camera used to frame and pick a stage.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/blueocean-stage/internal/engine/picking"
	"github.com/Faultbox/blueocean-stage/internal/engine/terrain"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center mgl32.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Projection
	FovY       float32 // radians
	Near, Far  float32
	ZoomFactor float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:    24.0,
		RotationX:   0.6,
		MinDistance: 2.0,
		MaxDistance: 500.0,
		MinPitch:    0.1,
		MaxPitch:    1.5,
		FovY:        mgl32.DegToRad(45),
		Near:        0.1,
		Far:         1000.0,
		ZoomFactor:  0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	pitch, yaw := float64(c.RotationX), float64(c.RotationY)
	offset := mgl32.Vec3{
		float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
	}
	return c.Center.Add(offset.Mul(c.Distance))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Ray casts a world-space ray through a pixel of a viewportW × viewportH viewport.
func (c *OrbitCamera) Ray(screenX, screenY, viewportW, viewportH float32) picking.Ray {
	viewProj := c.ProjectionMatrix(viewportW / viewportH).Mul4(c.ViewMatrix())
	return picking.ScreenToRay(screenX, screenY, viewportW, viewportH, viewProj.Inv())
}

// HandleDrag updates rotation, clamping pitch.
func (c *OrbitCamera) HandleDrag(deltaYaw, deltaPitch float32) {
	c.RotationY -= deltaYaw
	c.RotationX = mgl32.Clamp(c.RotationX+deltaPitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomFactor
	c.Distance = mgl32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on b and backs off until the horizontal extent fits the view.
func (c *OrbitCamera) FitToBounds(b terrain.Bounds) {
	c.Center = b.Center()

	size := b.Size()
	radius := size.Len() / 2
	dist := radius / float32(gomath.Sin(float64(c.FovY)/2))
	c.Distance = mgl32.Clamp(dist, c.MinDistance, c.MaxDistance)

	c.RotationX = 0.6 // Look down at ~35 degrees
	c.RotationY = 0.0
}
