//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pkgcompare/internal/domain/commands"
)

// StubCompareCommand is a stub implementation of commands.Compare.
type StubCompareCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Output           *commands.CompareOutput
	LastOpts         commands.CompareOptions
}

var _ commands.Compare = (*StubCompareCommand)(nil)

func (s *StubCompareCommand) Execute(
	_ context.Context,
	opts commands.CompareOptions,
) (*commands.CompareOutput, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Output != nil {
		return s.Output, nil
	}
	return &commands.CompareOutput{
		OutputPath: opts.OutputPath,
		Format:     opts.Format,
	}, nil
}
