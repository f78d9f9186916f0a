package memory_test

import (
	"testing"

	"github.com/marmos91/dittodrive/pkg/store/entity"
	"github.com/marmos91/dittodrive/pkg/store/entity/memory"
	storetesting "github.com/marmos91/dittodrive/pkg/store/entity/testing"
)

func TestMemoryEntityStore(t *testing.T) {
	suite := &storetesting.StoreTestSuite{
		NewStore: func(t *testing.T) entity.Store {
			return memory.NewMemoryEntityStore()
		},
	}
	suite.Run(t)
}
