package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/bannerfmt/internal/domain"
	domainmocks "github.com/mouse-blink/bannerfmt/internal/domain/mocks"
)

func newTestRoot(sub ...func() *cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	for _, s := range sub {
		cmd.AddCommand(s())
	}

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func swapWorkflow(t *testing.T, mockWorkflow domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = original })
}

func TestCheckCmd_DefaultPaths(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	cmd := newTestRoot(newCheckCmd)

	mockWorkflow.On("Check", mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == "./..."
	})).Return(0, nil)

	cmd.SetArgs([]string{"check"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestCheckCmd_WithExcludeAndParallel(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	cmd := newTestRoot(newCheckCmd)

	mockWorkflow.On("Check", mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Exclude) == 1 && args.Exclude[0] == "^vendor/" && args.Workers == 4
	})).Return(0, nil)

	cmd.SetArgs([]string{"check", "-x", "^vendor/", "-p", "4", "./src/..."})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestCheckCmd_ViolationsYieldError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	cmd := newTestRoot(newCheckCmd)

	mockWorkflow.On("Check", mock.Anything).Return(3, nil)

	cmd.SetArgs([]string{"check", "."})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 function(s)")
}

func TestNewCheckCmd(t *testing.T) {
	cmd := newCheckCmd()

	assert.Equal(t, "check [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, checkLongDescription, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
	assert.NotNil(t, cmd.Flags().Lookup("parallel"))
}
