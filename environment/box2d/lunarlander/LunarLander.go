// Package lunarlander provides an implementation of the Lunar Lander
// environment.
package lunarlander

import (
	"fmt"
	"math"

	"github.com/ByteArena/box2d"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/landerbench/environment"
	"github.com/samuelfneumann/landerbench/timestep"
	"github.com/samuelfneumann/landerbench/utils/floatutils"
)

const (
	FPS float64 = 50

	// speed of game, adjusts forces as well
	Scale float64 = 30.0

	XGravity float64 = 0.0
	YGravity float64 = -10.0

	MainEnginePower     float64 = 13.0
	SideEnginePower     float64 = 0.6
	MainEngineYLocation float64 = 4.0

	LegAway         float64 = 20.0
	LegDown         float64 = 18.0
	LegW            float64 = 2.0
	LegH            float64 = 8.0
	LegSpringTorque float64 = 40.0

	SideEngineHeight float64 = 14.0
	SideEngineAway   float64 = 12.0

	Chunks int = 11

	ViewportW float64 = 600
	ViewportH float64 = 400

	// Action
	MaxContinuousAction float64 = 1.0
	MinContinuousAction float64 = -MaxContinuousAction
	MinDiscreteAction   int     = 0
	MaxDiscreteAction   int     = 3

	// State observations
	StateObservations int = 8

	// Default starting values
	InitialX      float64 = ViewportW / Scale / 2
	InitialY      float64 = ViewportH / Scale
	InitialRandom float64 = 1000.0 // Set 1500 to make game harder

	// DefaultCutoff is the number of steps after which episodes are
	// truncated by default
	DefaultCutoff int = 1000
)

// LanderPoly holds the vertices of the lander body in pixels
var LanderPoly = [][]float64{
	{-14, 17},
	{-17, 0},
	{-17, -10},
	{17, -10},
	{17, 0},
	{14, 17},
}

type contactDetector struct {
	env *lunarLander
}

func newContactDetector(e *lunarLander) *contactDetector {
	return &contactDetector{e}
}

func touches(body *box2d.B2Body, contact box2d.B2ContactInterface) bool {
	return body != nil && (body == contact.GetFixtureA().GetBody() ||
		body == contact.GetFixtureB().GetBody())
}

func (c *contactDetector) BeginContact(contact box2d.B2ContactInterface) {
	// If the body touches the ground, it's game over.
	// The ship should be landed gently.
	if touches(c.env.lander, contact) {
		c.env.gameOver = true
	}

	if len(c.env.legs) != 2 {
		return
	}
	if touches(c.env.legs[0], contact) {
		c.env.leg1GroundContact = true
	}
	if touches(c.env.legs[1], contact) {
		c.env.leg2GroundContact = true
	}
}

func (c *contactDetector) EndContact(contact box2d.B2ContactInterface) {
	if len(c.env.legs) != 2 {
		return
	}
	if touches(c.env.legs[0], contact) {
		c.env.leg1GroundContact = false
	}
	if touches(c.env.legs[1], contact) {
		c.env.leg2GroundContact = false
	}
}

func (c *contactDetector) PreSolve(contact box2d.B2ContactInterface,
	oldManifold box2d.B2Manifold) {
}

func (c *contactDetector) PostSolve(contact box2d.B2ContactInterface,
	impulse *box2d.B2ContactImpulse) {
}

// lunarLander implements the physics of the Lunar Lander environment.
// Actions are always 2-dimensional continuous vectors here; the
// Discrete and Continuous types map their own action spaces onto this.
type lunarLander struct {
	environment.Task

	world box2d.B2World

	moon   *box2d.B2Body
	lander *box2d.B2Body
	legs   []*box2d.B2Body

	leg1GroundContact bool
	leg2GroundContact bool

	helipadX1 float64
	helipadX2 float64
	helipadY  float64

	gameOver bool
	seed     uint64
	rng      distuv.Uniform

	actionBounds r1.Interval
	xBounds      r1.Interval
	yBounds      r1.Interval

	discount float64
	prevStep timestep.TimeStep
	mPower   float64
	sPower   float64
}

func newLunarLander(task environment.Task, discount float64,
	seed uint64) (*lunarLander, timestep.TimeStep, error) {
	l := &lunarLander{}
	l.world = box2d.MakeB2World(box2d.MakeB2Vec2(XGravity, YGravity))
	l.world.SetContactListener(newContactDetector(l))

	l.seed = seed
	l.rng = distuv.Uniform{Min: 0.0, Max: 1.0, Src: rand.NewSource(seed)}
	l.discount = discount

	l.actionBounds = r1.Interval{
		Min: MinContinuousAction,
		Max: MaxContinuousAction,
	}
	l.xBounds = r1.Interval{
		Min: 0.05 * ViewportW / Scale,
		Max: 0.95 * ViewportW / Scale,
	}
	l.yBounds = r1.Interval{Min: ViewportH / Scale / 2, Max: InitialY}

	if t, ok := task.(lunarLanderTask); ok {
		t.registerEnv(l)
	}
	l.Task = task

	step, err := l.Reset()
	if err != nil {
		return nil, timestep.TimeStep{}, err
	}
	return l, step, nil
}

// SPower returns the power of the orientation engines on the last step
func (l *lunarLander) SPower() float64 {
	return l.sPower
}

// MPower returns the power of the main engine on the last step
func (l *lunarLander) MPower() float64 {
	return l.mPower
}

// IsAwake returns whether the lander body is still being simulated.
// Box2D puts bodies to sleep once they come to rest.
func (l *lunarLander) IsAwake() bool {
	return l.lander.IsAwake()
}

// GroundContact returns whether each leg is touching the ground
func (l *lunarLander) GroundContact() (bool, bool) {
	return l.leg1GroundContact, l.leg2GroundContact
}

// IsGameOver returns whether the lander body has touched the ground
func (l *lunarLander) IsGameOver() bool {
	return l.gameOver
}

// Helipad returns the x bounds and the height of the landing pad in
// Box2D units
func (l *lunarLander) Helipad() (x1, x2, y float64) {
	return l.helipadX1, l.helipadX2, l.helipadY
}

func (l *lunarLander) destroy() {
	if l.moon == nil {
		return
	}
	l.world.DestroyBody(l.moon)
	l.moon = nil

	l.world.DestroyBody(l.lander)
	l.lander = nil

	l.world.DestroyBody(l.legs[0])
	l.world.DestroyBody(l.legs[1])
	l.legs = nil
}

// Reset resets the environment to a new starting state with new
// terrain and returns the first timestep of the new episode
func (l *lunarLander) Reset() (timestep.TimeStep, error) {
	l.destroy()
	l.gameOver = false
	l.prevStep = timestep.TimeStep{}
	l.mPower = 0.0
	l.sPower = 0.0

	// If we have a lunarLanderTask, its internal variables will need
	// to be reset when the environment is reset.
	if t, ok := l.Task.(lunarLanderTask); ok {
		t.reset()
	}
	start := l.Start()
	if err := validateStart(start, l.xBounds, l.yBounds); err != nil {
		return timestep.TimeStep{}, fmt.Errorf("reset: %v", err)
	}

	// Maximum W and H for Box2D world
	W := ViewportW / Scale
	H := ViewportH / Scale

	// Terrain
	height := make([]float64, Chunks+1)
	for i := range height {
		height[i] = l.rng.Rand() * (H / 2.0)
	}

	chunkX := make([]float64, Chunks)
	for i := range chunkX {
		chunkX[i] = float64(i) * (W / float64(Chunks-1))
	}

	l.helipadX1 = chunkX[Chunks/2-1]
	l.helipadX2 = chunkX[Chunks/2+1]
	l.helipadY = H / 4

	for i := Chunks/2 - 2; i <= Chunks/2+2; i++ {
		height[i] = l.helipadY
	}

	// The first chunk wraps around to the last height
	smoothY := make([]float64, Chunks)
	for i := range smoothY {
		prev := Chunks
		if i > 0 {
			prev = i - 1
		}
		smoothY[i] = 0.33 * (height[prev] + height[i] + height[i+1])
	}

	// Moon
	moonDef := box2d.MakeB2BodyDef()
	moonDef.Type = 0 // Static body
	l.moon = l.world.CreateBody(&moonDef)

	moonShape := box2d.NewB2EdgeShape()
	moonShape.Set(box2d.MakeB2Vec2(0.0, 0.0), box2d.MakeB2Vec2(W, 0.0))
	moonFixture := box2d.MakeB2FixtureDef()
	moonFixture.Shape = moonShape
	l.moon.CreateFixtureFromDef(&moonFixture)

	for i := 0; i < Chunks-1; i++ {
		edge := box2d.NewB2EdgeShape()
		edge.Set(
			box2d.MakeB2Vec2(chunkX[i], smoothY[i]),
			box2d.MakeB2Vec2(chunkX[i+1], smoothY[i+1]),
		)

		edgeFixture := box2d.MakeB2FixtureDef()
		edgeFixture.Shape = edge
		edgeFixture.Density = 0.0
		edgeFixture.Friction = 0.1
		l.moon.CreateFixtureFromDef(&edgeFixture)
	}

	// Lander
	initialX := start.AtVec(0)
	initialY := start.AtVec(1)
	landerDef := box2d.MakeB2BodyDef()
	landerDef.Type = 2 // Dynamic body
	landerDef.Position = box2d.MakeB2Vec2(initialX, initialY)
	landerDef.Angle = 0.0
	l.lander = l.world.CreateBody(&landerDef)

	landerShape := box2d.NewB2PolygonShape()
	vertices := make([]box2d.B2Vec2, len(LanderPoly))
	for i := range LanderPoly {
		vertices[i] = box2d.MakeB2Vec2(
			LanderPoly[i][0]/Scale,
			LanderPoly[i][1]/Scale,
		)
	}
	landerShape.Set(vertices, len(vertices))

	landerFix := box2d.MakeB2FixtureDef()
	landerFix.Shape = landerShape
	landerFix.Density = 5.0
	landerFix.Friction = 0.1
	landerFix.Restitution = 0.0
	landerFix.Filter = box2d.MakeB2Filter()
	landerFix.Filter.CategoryBits = 0x0010
	landerFix.Filter.MaskBits = 0x001
	l.lander.CreateFixtureFromDef(&landerFix)

	initialRandom := start.AtVec(2)
	initialForce := box2d.MakeB2Vec2(
		(l.rng.Rand()*2*initialRandom)-initialRandom,
		(l.rng.Rand()*2*initialRandom)-initialRandom,
	)
	l.lander.ApplyForceToCenter(initialForce, true)

	// Legs
	l.legs = make([]*box2d.B2Body, 0, 2)
	for _, i := range []float64{-1.0, 1.0} {
		legDef := box2d.MakeB2BodyDef()
		legDef.Type = 2 // Dynamic body
		legDef.Position = box2d.MakeB2Vec2(initialX-i*LegAway/Scale,
			initialY)
		legDef.Angle = i * 0.05
		leg := l.world.CreateBody(&legDef)
		l.legs = append(l.legs, leg)

		legShape := box2d.NewB2PolygonShape()
		legShape.SetAsBox(LegW/Scale, LegH/Scale)

		legFix := box2d.MakeB2FixtureDef()
		legFix.Density = 1.0
		legFix.Restitution = 0.0
		legFix.Shape = legShape
		legFix.Filter = box2d.MakeB2Filter()
		legFix.Filter.CategoryBits = 0x0020
		legFix.Filter.MaskBits = 0x001
		leg.CreateFixtureFromDef(&legFix)

		rjd := box2d.MakeB2RevoluteJointDef()
		rjd.BodyA = l.lander
		rjd.BodyB = leg
		rjd.LocalAnchorA = box2d.MakeB2Vec2(0., 0.)
		rjd.LocalAnchorB = box2d.MakeB2Vec2(i*LegAway/Scale, LegDown/Scale)
		rjd.EnableMotor = true
		rjd.EnableLimit = true
		rjd.MaxMotorTorque = LegSpringTorque
		rjd.MotorSpeed = 0.3 * i

		if i < 0 {
			rjd.LowerAngle = 0.9 - 0.5
			rjd.UpperAngle = 0.9
		} else {
			rjd.LowerAngle = -0.9
			rjd.UpperAngle = -0.9 + 0.5
		}
		l.world.CreateJoint(&rjd)
	}
	l.leg1GroundContact = false
	l.leg2GroundContact = false

	// Settle the world with a no-op. The resulting reward only primes
	// the task's shaping and is not part of the episode.
	obs, _ := l.simulate(0.0, 0.0)
	step := timestep.New(timestep.First, 0.0, l.discount, obs, 0)
	l.prevStep = step

	return step, nil
}

// step takes a single environmental step given a 2-dimensional
// continuous action of (main engine, orientation engine)
func (l *lunarLander) step(main, lateral float64) (timestep.TimeStep, bool) {
	obs, reward := l.simulate(main, lateral)

	t := timestep.New(timestep.Mid, reward, l.discount, obs,
		l.prevStep.Number+1)
	l.End(&t)
	l.prevStep = t

	return t, t.Last()
}

// simulate fires the engines, advances the Box2D world by one frame
// and returns the new observation and the task's reward
func (l *lunarLander) simulate(main, lateral float64) (*mat.VecDense,
	float64) {
	main = floatutils.ClipInterval(main, l.actionBounds)
	lateral = floatutils.ClipInterval(lateral, l.actionBounds)

	// Engines
	tip := [2]float64{
		math.Sin(l.lander.GetAngle()),
		math.Cos(l.lander.GetAngle()),
	}
	side := [2]float64{-tip[1], tip[0]}
	var dispersion [2]float64
	for i := range dispersion {
		dispersion[i] = (2.0*l.rng.Rand() - 1.0) / Scale
	}

	// Main engine
	mPower := 0.0
	if main > 0.0 {
		mPower = (floatutils.Clip(main, 0.0, 1.0) + 1.0) * 0.5

		ox := tip[0]*(MainEngineYLocation/Scale+2.0*dispersion[0]) +
			side[0]*dispersion[1]
		oy := -tip[1]*(MainEngineYLocation/Scale+2.0*dispersion[0]) -
			side[1]*dispersion[1]

		impulsePos := box2d.MakeB2Vec2(
			l.lander.GetPosition().X+ox,
			l.lander.GetPosition().Y+oy,
		)
		linearImpulse := box2d.MakeB2Vec2(
			-ox*MainEnginePower*mPower,
			-oy*MainEnginePower*mPower,
		)
		l.lander.ApplyLinearImpulse(linearImpulse, impulsePos, true)
	}
	l.mPower = mPower

	// Orientation engines
	sPower := 0.0
	if math.Abs(lateral) > 0.5 {
		direction := floatutils.Sign(lateral)
		sPower = floatutils.Clip(math.Abs(lateral), 0.5, 1.0)

		ox := tip[0]*dispersion[0] + side[0]*(3.0*dispersion[1]+direction*
			SideEngineAway/Scale)
		oy := -tip[1]*dispersion[0] - side[1]*(3.0*dispersion[1]+direction*
			SideEngineAway/Scale)

		impulsePos := box2d.MakeB2Vec2(
			l.lander.GetPosition().X+ox-tip[0]*17.0/Scale,
			l.lander.GetPosition().Y+oy+tip[1]*SideEngineHeight/Scale,
		)
		linearImpulse := box2d.MakeB2Vec2(
			-ox*SideEnginePower*sPower,
			-oy*SideEnginePower*sPower,
		)
		l.lander.ApplyLinearImpulse(linearImpulse, impulsePos, true)
	}
	l.sPower = sPower

	l.world.Step(1.0/FPS, 6*int(Scale), 2*int(Scale))

	pos := l.lander.GetPosition()
	vel := l.lander.GetLinearVelocity()

	var leg1GroundContact, leg2GroundContact float64
	if l.leg1GroundContact {
		leg1GroundContact = 1.0
	}
	if l.leg2GroundContact {
		leg2GroundContact = 1.0
	}

	W := ViewportW / Scale
	H := ViewportH / Scale
	state := mat.NewVecDense(StateObservations, []float64{
		(pos.X - W/2.0) / (W / 2.0),
		(pos.Y - (l.helipadY + LegDown/Scale)) / (H / 2.0),
		vel.X * (W / 2.0) / FPS,
		vel.Y * (H / 2.0) / FPS,
		l.lander.GetAngle(),
		20.0 * l.lander.GetAngularVelocity() / FPS,
		leg1GroundContact,
		leg2GroundContact,
	})

	action := mat.NewVecDense(2, []float64{main, lateral})
	reward := l.GetReward(l.prevStep.Observation, action, state)

	return state, reward
}

// CurrentTimeStep returns the last timestep taken in the environment
func (l *lunarLander) CurrentTimeStep() timestep.TimeStep {
	return l.prevStep
}

// DiscountSpec returns the discount specification of the environment
func (l *lunarLander) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{l.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}

// ObservationSpec returns the observation specification of the
// environment. Positions and velocities are not hard limits of the
// simulation but the bounds Gym advertises for LunarLander-v3.
func (l *lunarLander) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(StateObservations, nil)

	lowerBound := mat.NewVecDense(StateObservations, []float64{
		-2.5, -2.5, -10., -10., -2 * math.Pi, -10., 0., 0.,
	})
	upperBound := mat.NewVecDense(StateObservations, []float64{
		2.5, 2.5, 10., 10., 2 * math.Pi, 10., 1., 1.,
	})

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Continuous)
}

func validateStart(state *mat.VecDense, xBounds, yBounds r1.Interval) error {
	if state.Len() != 3 {
		return fmt.Errorf("starting values should be 3-dimensional, got %v",
			state.Len())
	}

	if state.AtVec(0) > xBounds.Max || state.AtVec(0) < xBounds.Min {
		return fmt.Errorf("x position out of bounds, expected x ϵ [%v, %v] "+
			"but got x = %v", xBounds.Min, xBounds.Max, state.AtVec(0))
	}

	if state.AtVec(1) > yBounds.Max || state.AtVec(1) < yBounds.Min {
		return fmt.Errorf("y position out of bounds, expected y ϵ [%v, %v] "+
			"but got y = %v", yBounds.Min, yBounds.Max, state.AtVec(1))
	}

	return nil
}
