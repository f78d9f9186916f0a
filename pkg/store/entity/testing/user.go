package testing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

func (suite *StoreTestSuite) RunUserTests(test *testing.T) {
	test.Run("CreateUser_Success", suite.TestCreateUser_Success)
	test.Run("CreateUser_Duplicate", suite.TestCreateUser_Duplicate)
	test.Run("GetUser_NotFound", suite.TestGetUser_NotFound)
	test.Run("Healthcheck", suite.TestHealthcheck)
}

// TestCreateUser_Success verifies that users can be created and read back.
func (suite *StoreTestSuite) TestCreateUser_Success(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	user := &entity.User{ID: "alice", CreatedAt: time.Now().UTC()}
	err := store.CreateUser(ctx, user)
	require.NoError(test, err)

	loaded, err := store.GetUser(ctx, "alice")
	require.NoError(test, err)
	assert.Equal(test, "alice", loaded.ID)
	assert.False(test, loaded.CreatedAt.IsZero(), "CreatedAt should round-trip")
}

// TestCreateUser_Duplicate verifies that duplicate user ids are rejected.
func (suite *StoreTestSuite) TestCreateUser_Duplicate(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	err := store.CreateUser(ctx, &entity.User{ID: "alice"})
	require.NoError(test, err)

	err = store.CreateUser(ctx, &entity.User{ID: "alice"})
	AssertErrorCode(test, entity.ErrAlreadyExists, err,
		"Should return ErrAlreadyExists for duplicate user id")
}

// TestGetUser_NotFound verifies the not-found contract.
func (suite *StoreTestSuite) TestGetUser_NotFound(test *testing.T) {
	store := suite.NewStore(test)
	ctx := context.Background()

	user, err := store.GetUser(ctx, "nobody")
	AssertErrorCode(test, entity.ErrNotFound, err,
		"Should return ErrNotFound for unknown user")
	assert.Nil(test, user)
}

// TestHealthcheck verifies a fresh store reports healthy.
func (suite *StoreTestSuite) TestHealthcheck(test *testing.T) {
	store := suite.NewStore(test)

	err := store.Healthcheck(context.Background())
	assert.NoError(test, err)
}
