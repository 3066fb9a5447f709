package nlp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/isdsec/nlp"
)

// projectionProblem: min (x-1)² + (y-2)² s.t. x+y ≤ 1, optimum (0,1), f = 2.
func projectionProblem() nlp.Problem {
	return nlp.Problem{
		Objective: func(x []float64) float64 {
			return (x[0]-1)*(x[0]-1) + (x[1]-2)*(x[1]-2)
		},
		Constraints: []nlp.Constraint{{
			Name: "x+y<=1",
			Kind: nlp.Inequality,
			Eval: func(x []float64) float64 { return 1 - x[0] - x[1] },
			Grad: func(g, _ []float64) { g[0], g[1] = -1, -1 },
		}},
	}
}

// lineProblem: min x² + y² s.t. x + 2y = 5, optimum (1,2), f = 5.
func lineProblem() nlp.Problem {
	return nlp.Problem{
		Objective: func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] },
		Constraints: []nlp.Constraint{{
			Name: "x+2y=5",
			Kind: nlp.Equality,
			Eval: func(x []float64) float64 { return x[0] + 2*x[1] - 5 },
			Grad: func(g, _ []float64) { g[0], g[1] = 1, 2 },
		}},
	}
}

// MinimizeSuite exercises Minimize on problems with known optima.
type MinimizeSuite struct {
	suite.Suite
}

func (s *MinimizeSuite) TestInequality_NelderMead() {
	res, err := nlp.Minimize(projectionProblem(), []float64{0, 0}, nlp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), nlp.Converged, res.Status)
	require.InDelta(s.T(), 0.0, res.X[0], 1e-3)
	require.InDelta(s.T(), 1.0, res.X[1], 1e-3)
	require.InDelta(s.T(), 2.0, res.F, 1e-5)
	require.LessOrEqual(s.T(), res.Violation, nlp.DefaultFeasibilityTolerance)
}

func (s *MinimizeSuite) TestEquality_NelderMead() {
	res, err := nlp.Minimize(lineProblem(), []float64{0, 0}, nlp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), nlp.Converged, res.Status)
	require.InDelta(s.T(), 1.0, res.X[0], 1e-3)
	require.InDelta(s.T(), 2.0, res.X[1], 1e-3)
	require.InDelta(s.T(), 5.0, res.F, 1e-4)
}

func (s *MinimizeSuite) TestEquality_BFGS() {
	opts := nlp.DefaultOptions()
	opts.Method = nlp.BFGS
	res, err := nlp.Minimize(lineProblem(), []float64{0, 0}, opts)
	require.NoError(s.T(), err)
	require.NotEqual(s.T(), nlp.Infeasible, res.Status)
	require.InDelta(s.T(), 1.0, res.X[0], 1e-3)
	require.InDelta(s.T(), 2.0, res.X[1], 1e-3)
}

// TestInactiveConstraint: the unconstrained optimum is feasible.
func (s *MinimizeSuite) TestInactiveConstraint() {
	p := projectionProblem()
	p.Constraints[0].Eval = func(x []float64) float64 { return 10 - x[0] - x[1] }
	res, err := nlp.Minimize(p, []float64{0, 0}, nlp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), nlp.Converged, res.Status)
	require.InDelta(s.T(), 1.0, res.X[0], 1e-3)
	require.InDelta(s.T(), 2.0, res.X[1], 1e-3)
}

// TestNeverWorseThanFeasibleStart: the start point is a candidate optimum.
func (s *MinimizeSuite) TestNeverWorseThanFeasibleStart() {
	p := projectionProblem()
	x0 := []float64{0.2, 0.3}
	f0 := p.Objective(x0)
	opts := nlp.DefaultOptions()
	opts.MaxOuterIterations = 1
	res, err := nlp.Minimize(p, x0, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), nlp.IterationLimit, res.Status)
	require.LessOrEqual(s.T(), res.F, f0)
	require.Equal(s.T(), []float64{0.2, 0.3}, x0, "x0 must not be modified")
}

func (s *MinimizeSuite) TestInfeasibleRegion() {
	p := nlp.Problem{
		Objective: func(x []float64) float64 { return x[0] * x[0] },
		Constraints: []nlp.Constraint{
			{Name: "x>=1", Kind: nlp.Inequality, Eval: func(x []float64) float64 { return x[0] - 1 }},
			{Name: "x<=0", Kind: nlp.Inequality, Eval: func(x []float64) float64 { return -x[0] }},
		},
	}
	opts := nlp.DefaultOptions()
	opts.MaxOuterIterations = 8
	res, err := nlp.Minimize(p, []float64{0.5}, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), nlp.Infeasible, res.Status)
	require.Greater(s.T(), res.Violation, 0.1)
}

// TestDeterministic: identical inputs produce identical Results.
func (s *MinimizeSuite) TestDeterministic() {
	a, err := nlp.Minimize(projectionProblem(), []float64{0.1, 0.1}, nlp.DefaultOptions())
	require.NoError(s.T(), err)
	b, err := nlp.Minimize(projectionProblem(), []float64{0.1, 0.1}, nlp.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

func TestMinimizeSuite(t *testing.T) {
	suite.Run(t, new(MinimizeSuite))
}

func TestMinimize_Errors(t *testing.T) {
	_, err := nlp.Minimize(nlp.Problem{}, []float64{0}, nlp.DefaultOptions())
	assert.ErrorIs(t, err, nlp.ErrNoObjective)

	_, err = nlp.Minimize(projectionProblem(), nil, nlp.DefaultOptions())
	assert.ErrorIs(t, err, nlp.ErrDimension)

	p := projectionProblem()
	p.Constraints = append(p.Constraints, nlp.Constraint{Name: "broken"})
	_, err = nlp.Minimize(p, []float64{0, 0}, nlp.DefaultOptions())
	assert.ErrorIs(t, err, nlp.ErrBadConstraint)

	bad := []func(*nlp.Options){
		func(o *nlp.Options) { o.Tolerance = -1 },
		func(o *nlp.Options) { o.FeasibilityTolerance = math.NaN() },
		func(o *nlp.Options) { o.PenaltyGrowth = 1 },
		func(o *nlp.Options) { o.MaxIterations = -3 },
		func(o *nlp.Options) { o.Method = nlp.Method(9) },
	}
	for i, mut := range bad {
		opts := nlp.DefaultOptions()
		mut(&opts)
		_, err = nlp.Minimize(projectionProblem(), []float64{0, 0}, opts)
		assert.ErrorIs(t, err, nlp.ErrBadOption, "case %d", i)
	}
}

// TestMinimize_ZeroOptions: the zero Options value behaves like the defaults.
func TestMinimize_ZeroOptions(t *testing.T) {
	a, err := nlp.Minimize(projectionProblem(), []float64{0, 0}, nlp.Options{})
	require.NoError(t, err)
	b, err := nlp.Minimize(projectionProblem(), []float64{0, 0}, nlp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Status, b.Status)
}

func TestViolated(t *testing.T) {
	cs := []nlp.Constraint{
		{Kind: nlp.Inequality, Eval: func(x []float64) float64 { return x[0] }},
		{Kind: nlp.Inequality, Eval: func(x []float64) float64 { return x[1] }},
		{Kind: nlp.Inequality, Eval: func(x []float64) float64 { return 1 - x[0] - x[1] }},
		{Kind: nlp.Equality, Eval: func(x []float64) float64 { return x[1] - 2 }},
	}
	assert.Equal(t, []int{0}, nlp.Violated(cs, []float64{-1, 2}, 0))
	assert.Equal(t, []int{0, 2, 3}, nlp.Violated(cs, []float64{-1, 2.5}, 0))
	assert.Nil(t, nlp.Violated(cs[:3], []float64{0.25, 0.5}, 0))
	// Boundary points are feasible.
	assert.Nil(t, nlp.Violated(cs[:3], []float64{0, 1}, 0))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "ineq", nlp.Inequality.String())
	assert.Equal(t, "eq", nlp.Equality.String())
	assert.Equal(t, "converged", nlp.Converged.String())
	assert.Equal(t, "iteration limit", nlp.IterationLimit.String())
	assert.Equal(t, "infeasible", nlp.Infeasible.String())
}
