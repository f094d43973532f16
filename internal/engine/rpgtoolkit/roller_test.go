package rpgtoolkit_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

// scriptedRoller satisfies dice.Roller by replaying fixed values
type scriptedRoller struct {
	values []int
	sizes  []int
}

func (s *scriptedRoller) Roll(size int) (int, error) {
	rolls, err := s.RollN(1, size)
	if err != nil {
		return 0, err
	}
	return rolls[0], nil
}

func (s *scriptedRoller) RollN(count, size int) ([]int, error) {
	if len(s.values) < count {
		return nil, fmt.Errorf("script exhausted")
	}
	out := s.values[:count]
	s.values = s.values[count:]
	for range out {
		s.sizes = append(s.sizes, size)
	}
	return out, nil
}

type RollerTestSuite struct {
	suite.Suite
	script *scriptedRoller
	roller *rpgtoolkit.Roller
	ctx    context.Context
}

func TestRollerSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) SetupTest() {
	s.script = &scriptedRoller{}
	s.roller = rpgtoolkit.NewRoller(&rpgtoolkit.RollerConfig{Roller: s.script})
	s.ctx = context.Background()
}

func (s *RollerTestSuite) TestRoll() {
	testCases := []struct {
		name    string
		formula string
		values  []int
		total   int
		sizes   []int
	}{
		{name: "single die", formula: "1d20", values: []int{11}, total: 11, sizes: []int{20}},
		{name: "implicit count", formula: "d6", values: []int{4}, total: 4, sizes: []int{6}},
		{name: "keep lowest", formula: "2d20kl", values: []int{15, 3}, total: 3, sizes: []int{20, 20}},
		{name: "keep highest", formula: "2d20kh", values: []int{15, 3}, total: 15, sizes: []int{20, 20}},
		{name: "large weapon attack", formula: "2d20kl+1d4", values: []int{9, 12, 2}, total: 11, sizes: []int{20, 20, 4}},
		{name: "critical damage", formula: "(1d8+1d4)*2", values: []int{5, 3}, total: 16, sizes: []int{8, 4}},
		{name: "flat constant", formula: "1d6+2", values: []int{1}, total: 3, sizes: []int{6}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.script.values = tc.values
			s.script.sizes = nil

			result, err := s.roller.Roll(s.ctx, tc.formula)

			s.Require().NoError(err)
			s.Equal(tc.formula, result.Formula)
			s.Equal(tc.total, result.Total)
			s.Equal(tc.values, result.Results, "raw results keep roll order, dropped dice included")
			s.Equal(tc.sizes, s.script.sizes)
		})
	}
}

func (s *RollerTestSuite) TestFirstDieIsRawNotKept() {
	s.script.values = []int{1, 18}

	result, err := s.roller.Roll(s.ctx, "2d20kh")

	s.Require().NoError(err)
	s.Equal(18, result.Total)
	s.Equal(1, result.FirstDie())
}

func (s *RollerTestSuite) TestInvalidFormulas() {
	for _, formula := range []string{"", "banana", "0d6", "1d0", "1d6kl2", "(1d6)*0"} {
		s.Run(formula, func() {
			s.script.values = []int{1, 1}
			_, err := s.roller.Roll(s.ctx, formula)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RollerTestSuite) TestRollerErrorIsWrapped() {
	s.script.values = nil

	_, err := s.roller.Roll(s.ctx, "1d6")

	s.Require().Error(err)
	s.Contains(err.Error(), "script exhausted")
}

func (s *RollerTestSuite) TestEntityWrappers() {
	actor := rpgtoolkit.WrapActor(&bh2e.Actor{ID: "act_1", Type: bh2e.ActorTypeCharacter})
	s.Equal("act_1", actor.GetID())
	s.Equal("character", actor.GetType())

	item := rpgtoolkit.WrapItem(&bh2e.Item{ID: "itm_1", Type: bh2e.ItemTypeArmour})
	s.Equal("itm_1", item.GetID())
	s.Equal("armour", item.GetType())
}
