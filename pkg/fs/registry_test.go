package fs

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/akeil/inkbook"
)

type RegistryTestSuite struct {
	suite.Suite
	Root     string
	Registry *Registry
}

func (suite *RegistryTestSuite) SetupTest() {
	suite.Root = filepath.Join(suite.T().TempDir(), "notebooks")
	suite.Registry = NewRegistry(suite.Root, NewStore())
}

func (suite *RegistryTestSuite) TestListEmpty() {
	t := suite.T()
	l, err := suite.Registry.List()
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.Empty(t, l)

	// missing root is created
	info, err := os.Stat(suite.Root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func (suite *RegistryTestSuite) TestCreateAndList() {
	t := suite.T()
	dir, err := suite.Registry.Create("Trip")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(suite.Root, "Trip"), dir)

	l, err := suite.Registry.List()
	require.NoError(t, err)

	want := []inkbook.Entry{{Name: "Trip", Dir: dir}}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Errorf("unexpected listing (-want +got):\n%s", diff)
	}

	m, err := NewStore().ReadMetadata(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Pages)

	// page 1 exists and is blank
	data, err := NewStore().ReadPage(dir, 1)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func (suite *RegistryTestSuite) TestCreateTwice() {
	t := suite.T()
	_, err := suite.Registry.Create("Trip")
	require.NoError(t, err)

	_, err = suite.Registry.Create("Trip")
	assert.True(t, inkbook.IsAlreadyExists(err), "unexpected error %v", err)

	l, err := suite.Registry.List()
	require.NoError(t, err)
	assert.Len(t, l, 1)
}

func (suite *RegistryTestSuite) TestCreateInvalidName() {
	t := suite.T()
	for _, name := range []string{"", "  ", "..", "a/b", `a\b`} {
		_, err := suite.Registry.Create(name)
		assert.True(t, inkbook.IsMalformed(err), "name %q: unexpected error %v", name, err)
	}
}

func (suite *RegistryTestSuite) TestListSkipsCorrupt() {
	t := suite.T()
	for _, name := range []string{"Alpha", "Beta"} {
		_, err := suite.Registry.Create(name)
		require.NoError(t, err)
	}

	// corrupt metadata
	bad := filepath.Join(suite.Root, "Broken")
	require.NoError(t, os.Mkdir(bad, 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(bad, "metadata.json"), []byte("{not json"), 0644))

	// no metadata at all
	require.NoError(t, os.Mkdir(filepath.Join(suite.Root, "Empty"), 0755))

	// plain file in the root
	require.NoError(t, ioutil.WriteFile(filepath.Join(suite.Root, "notes.txt"), []byte("x"), 0644))

	l, err := suite.Registry.List()
	require.NoError(t, err)

	names := make([]string, len(l))
	for i, e := range l {
		names[i] = e.Name
	}
	sort.Strings(names)
	assert.Equal(t, []string{"Alpha", "Beta"}, names)
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func TestFilter(t *testing.T) {
	entries := []inkbook.Entry{
		{Name: "Trip to Rome", Dir: "a"},
		{Name: "Groceries", Dir: "b"},
		{Name: "ROME again", Dir: "c"},
	}

	assert.Equal(t, entries, Filter(entries, ""))

	got := Filter(entries, "rome")
	assert.Equal(t, []inkbook.Entry{entries[0], entries[2]}, got)

	assert.Empty(t, Filter(entries, "paris"))
}

func TestContains(t *testing.T) {
	root := filepath.Join("tmp", "notebooks")
	r := NewRegistry(root, NewStore())

	assert.True(t, r.Contains(r.Dir("Trip")))
	assert.True(t, r.Contains(filepath.Join(root, "Trip") + string(filepath.Separator)))
	assert.True(t, r.Contains(r.Dir("..notes")))
	assert.False(t, r.Contains(root))
	assert.False(t, r.Contains(filepath.Join(root, "..", "elsewhere")))
	assert.False(t, r.Contains(filepath.Join(root, "Trip", "nested")))
	assert.False(t, r.Contains("other"))
}
