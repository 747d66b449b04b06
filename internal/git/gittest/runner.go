// Package gittest provides a testify mock of git.Runner.
package gittest

import (
	"context"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/Johannes-Berggren/branchgoblin/internal/git"
)

// MockRunner records git invocations. Expectations are keyed on the joined
// argument list, e.g. runner.OnOutput("status --porcelain=v1").
type MockRunner struct {
	mock.Mock
}

var _ git.Runner = (*MockRunner)(nil)

func NewMockRunner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRunner {
	m := &MockRunner{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRunner) Output(ctx context.Context, args ...string) (string, error) {
	ret := m.Called(strings.Join(args, " "))
	return ret.String(0), ret.Error(1)
}

func (m *MockRunner) CombinedOutput(ctx context.Context, args ...string) (string, error) {
	ret := m.Called(strings.Join(args, " "))
	return ret.String(0), ret.Error(1)
}

// OnOutput expects a query with the given joined args.
func (m *MockRunner) OnOutput(args string) *mock.Call {
	return m.On("Output", args)
}

// OnCombined expects a mutating command with the given joined args.
func (m *MockRunner) OnCombined(args string) *mock.Call {
	return m.On("CombinedOutput", args)
}
