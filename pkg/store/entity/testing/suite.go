// Package testing provides a reusable test suite for entity.Store
// implementations. Every backend (memory, badger) must pass the same suite,
// which pins down the store contract the drive engine depends on: point
// reads return copies, AddTo*/RemoveFrom* are idempotent set operations, and
// missing records surface ErrNotFound.
package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// StoreTestSuite runs the entity store contract tests against an arbitrary
// implementation.
type StoreTestSuite struct {
	// NewStore creates a fresh, empty store for each test.
	NewStore func(t *testing.T) entity.Store
}

// Run executes the complete suite.
func (suite *StoreTestSuite) Run(test *testing.T) {
	test.Run("Users", suite.RunUserTests)
	test.Run("Files", suite.RunFileTests)
	test.Run("Folders", suite.RunFolderTests)
}

// AssertErrorCode asserts that err is a StoreError with the expected code.
func AssertErrorCode(t *testing.T, expected entity.ErrorCode, err error, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, entity.IsCode(err, expected), msgAndArgs...)
}
