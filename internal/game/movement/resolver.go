// Package movement applies player input and gravity and resolves collisions with walls.
package movement

import (
	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
)

// playerBoxSize is the collision box centred at the eye position.
var playerBoxSize = model.Vec3{
	X: constants.PlayerBoxWidth,
	Y: constants.PlayerBoxHeight,
	Z: constants.PlayerBoxDepth,
}

// StepResult reports what happened during a Step. Used by tests and debug logging.
type StepResult struct {
	// Blocked: the horizontal move was rejected by the containment predicate.
	Blocked bool
	// Collided: at least one wall box overlapped and pushed the player.
	Collided bool
	// Reverted: the safety pass restored the pre-tick position.
	Reverted bool
	// Landed: the player touched the floor this tick after being airborne.
	Landed bool
}

// Resolver moves the player against static geometry.
type Resolver struct {
	index *geo.Index
}

// NewResolver creates a resolver over idx.
func NewResolver(idx *geo.Index) *Resolver {
	return &Resolver{index: idx}
}

// FrameScale converts elapsed milliseconds to reference frames.
// Capped at MaxFrameScale so a long stall cannot move the player through a wall.
func FrameScale(dtMs float64) float64 {
	if dtMs <= 0 {
		return 0
	}
	s := dtMs / constants.ReferenceFrameMs
	if s > constants.MaxFrameScale {
		return constants.MaxFrameScale
	}
	return s
}

// PlayerBox returns the collision box of a player whose eye is at pos.
func PlayerBox(pos model.Vec3) geo.Box {
	return geo.BoxFromCenter(pos, playerBoxSize)
}

// Step advances the player by one tick.
// view is the camera direction; only its horizontal part is used.
// While dashing the ability owns the horizontal position and input is ignored.
func (r *Resolver) Step(p *model.Player, in model.InputState, view model.Vec3, dtMs float64, dashing bool) StepResult {
	var res StepResult
	scale := FrameScale(dtMs)
	preTick := p.Position

	if !dashing {
		if disp := displacement(in, view, constants.PlayerMoveSpeed*scale); disp != (model.Vec3{}) {
			candidate := p.Position.Add(disp)
			if r.index.IsOutsideWalls(candidate) {
				p.Position = candidate
			} else {
				res.Blocked = true
			}
		}
	}

	if in.Jump && !p.IsJumping {
		p.VerticalVelocity = p.Tuning.JumpForce
		p.IsJumping = true
	}
	if p.IsJumping {
		p.VerticalVelocity -= constants.Gravity * scale
		p.Position.Y += p.VerticalVelocity * scale
		if p.Position.Y <= constants.PlayerEyeHeight {
			p.Position.Y = constants.PlayerEyeHeight
			p.IsJumping = false
			p.VerticalVelocity = 0
			res.Landed = true
		}
	}

	res.Collided = r.pushOut(p)

	if res.Collided && r.index.AnyOverlap(PlayerBox(p.Position)) {
		p.Position = preTick
		res.Reverted = true
	}

	if p.Position.Y < constants.PlayerEyeHeight {
		p.Position.Y = constants.PlayerEyeHeight
		p.VerticalVelocity = 0
		if p.IsJumping {
			res.Landed = true
		}
		p.IsJumping = false
	}

	// Bounce can carry the eye across a footprint edge; the player never ends a tick there.
	if !r.index.IsOutsideWalls(p.Position) {
		p.Position = preTick
		res.Reverted = true
	}

	return res
}

// pushOut resolves the player box against every wall it overlaps.
// The box is computed once from the position before resolution, so each wall sees the same box.
func (r *Resolver) pushOut(p *model.Player) bool {
	box := PlayerBox(p.Position)
	overlapping := r.index.Overlapping(box)
	if len(overlapping) == 0 {
		return false
	}

	walls := r.index.Walls()
	for _, i := range overlapping {
		w := walls[i]
		center := w.Center()
		pen := box.Penetration(w.Box())

		switch {
		case pen.X <= pen.Y && pen.X <= pen.Z:
			p.Position.X += pushSign(p.Position.X, center.X) * (pen.X + constants.CollisionBuffer)
		case pen.Y <= pen.Z:
			p.Position.Y += pushSign(p.Position.Y, center.Y) * (pen.Y + constants.CollisionBuffer)
		default:
			p.Position.Z += pushSign(p.Position.Z, center.Z) * (pen.Z + constants.CollisionBuffer)
		}

		bounce := p.Position.Sub(center).Normalize()
		p.Position = p.Position.Add(bounce.Scale(constants.CollisionBounce))

		if p.VerticalVelocity != 0 {
			p.VerticalVelocity *= constants.VerticalDamping
		}
	}
	return true
}

func pushSign(pos, wall float64) float64 {
	if pos < wall {
		return -1
	}
	return 1
}

// displacement composes the view-relative horizontal move for one tick.
func displacement(in model.InputState, view model.Vec3, amount float64) model.Vec3 {
	var moveX, moveZ float64
	if in.Forward {
		moveZ--
	}
	if in.Backward {
		moveZ++
	}
	if in.Left {
		moveX--
	}
	if in.Right {
		moveX++
	}
	if moveX == 0 && moveZ == 0 {
		return model.Vec3{}
	}
	if moveX != 0 && moveZ != 0 {
		moveX *= constants.DiagonalFactor
		moveZ *= constants.DiagonalFactor
	}

	forward := ViewForward(view)
	right := model.Vec3{X: -forward.Z, Z: forward.X}

	return right.Scale(moveX * amount).Add(forward.Scale(-moveZ * amount))
}

// ViewForward returns the horizontal unit forward vector of a view direction.
// Looking straight up or down falls back to -Z.
func ViewForward(view model.Vec3) model.Vec3 {
	f := view.Horizontal().Normalize()
	if f == (model.Vec3{}) {
		return model.Vec3{Z: -1}
	}
	return f
}
