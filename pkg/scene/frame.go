package scene

// Frame advances the world by dt seconds of wall-clock time.
//
// Order: physics steps, props copy their body poses, the ship collider
// takes the controller's pose, then the controller and camera update.
// It returns the number of physics steps taken.
func (s *Scene) Frame(dt float32) int {
	steps := s.stepPhysics(dt)

	for _, p := range s.Props {
		p.Sync()
	}
	s.ShipBody.SetPose(s.Controller.Position(), s.Controller.Rotation())

	s.Controller.Update(dt)
	s.Follower.Update(dt)

	return steps
}

// stepPhysics runs fixed steps for dt. With accumulation disabled exactly
// one step runs regardless of dt.
func (s *Scene) stepPhysics(dt float32) int {
	if !s.accumulate {
		s.Physics.Step(s.timeStep)
		return 1
	}

	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.timeStep && steps < s.maxSubsteps {
		s.Physics.Step(s.timeStep)
		s.accumulator -= s.timeStep
		steps++
	}

	// drop time we could not simulate instead of spiralling
	if steps == s.maxSubsteps && s.accumulator >= s.timeStep {
		s.accumulator = 0
	}
	return steps
}

// Accumulated returns wall-clock time not yet simulated
func (s *Scene) Accumulated() float32 {
	return s.accumulator
}
