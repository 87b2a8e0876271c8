package services_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	"github.com/orbisedu/academy_mgmt_app/internal/repositories/storage/jsonfile"
)

// newTestProvider builds the full repository set over a throwaway data
// directory, so service tests run against the real persistence layer.
func newTestProvider(t *testing.T) (*portsrepo.RepositoryProvider, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := jsonfile.NewStore(dir)
	require.NoError(t, err)
	return jsonfile.NewRepositoryProvider(store), dir
}

// seedCollection writes a collection file directly, bypassing the store. Used
// to plant records with backdated timestamps for edit-window tests.
func seedCollection(t *testing.T, dir, name string, records any) {
	t.Helper()
	encoded, err := json.Marshal(map[string]any{name: records})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), encoded, 0o644))
}

func seedBranch(t *testing.T, repos *portsrepo.RepositoryProvider) *domain.Branch {
	t.Helper()
	branch, err := repos.Branches.Create(context.Background(), domain.Branch{Name: "Main", IsActive: true})
	require.NoError(t, err)
	return branch
}
