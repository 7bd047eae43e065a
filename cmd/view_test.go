package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lintgate/fnlen/internal/domain"
	domainmocks "github.com/lintgate/fnlen/internal/domain/mocks"
	m "github.com/lintgate/fnlen/internal/model"
)

func TestViewCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	root := newTestRoot()

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".fnlen-reports")
	})).Return(nil)

	root.SetArgs([]string{"view"})
	require.NoError(t, root.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestViewCmd_CustomReportsDir(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	root := newTestRoot()

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("out/reports")
	})).Return(nil)

	root.SetArgs([]string{"view", "-r", "out/reports"})
	require.NoError(t, root.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestViewCmd_ConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	cfgPath := filepath.Join(t.TempDir(), "fnlen.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("reports_dir = \"custom\"\n"), 0o600))

	root := newTestRoot()

	// The same config file that steers where check saves must steer where
	// view loads from.
	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("custom")
	})).Return(nil)

	root.SetArgs([]string{"view", "-c", cfgPath})
	require.NoError(t, root.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestViewCmd_FlagBeatsConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	cfgPath := filepath.Join(t.TempDir(), "fnlen.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("reports_dir = \"custom\"\n"), 0o600))

	root := newTestRoot()

	mockWorkflow.On("View", mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("out/reports")
	})).Return(nil)

	root.SetArgs([]string{"view", "-c", cfgPath, "-r", "out/reports"})
	require.NoError(t, root.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestViewCmd_RejectsArgs(t *testing.T) {
	root := newTestRoot()

	root.SetArgs([]string{"view", "unexpected"})
	err := root.Execute()

	require.Error(t, err)
}

func TestNewViewCmd(t *testing.T) {
	cmd := newViewCmd()

	assert.Equal(t, "view", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}
