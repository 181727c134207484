package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flyerplan/internal/domain/entity"
)

func TestDealRecordKey(t *testing.T) {
	rq := require.New(t)

	record := entity.DealRecord{Store: "Acme", Item: "Chicken Breast", Price: 4.99}
	rq.Equal("AcmeChicken Breast", record.Key())

	// Case-sensitive, as retrieved.
	other := entity.DealRecord{Store: "acme", Item: "Chicken Breast", Price: 4.99}
	rq.NotEqual(record.Key(), other.Key())
}

func TestDealRecordValid(t *testing.T) {
	rq := require.New(t)

	rq.True(entity.DealRecord{Store: "Acme", Item: "Eggs", Price: 0}.Valid())
	rq.False(entity.DealRecord{Store: "", Item: "Eggs", Price: 1}.Valid())
	rq.False(entity.DealRecord{Store: "Acme", Item: "", Price: 1}.Valid())
	rq.False(entity.DealRecord{Store: "Acme", Item: "Eggs", Price: -0.01}.Valid())
}

func TestFlyerHandleIsGrocery(t *testing.T) {
	rq := require.New(t)

	rq.True(entity.FlyerHandle{Categories: []string{"Groceries", "Pharmacy"}}.IsGrocery())
	rq.True(entity.FlyerHandle{Categories: []string{" Groceries "}}.IsGrocery())
	rq.False(entity.FlyerHandle{Categories: []string{"Hardware"}}.IsGrocery())
	rq.False(entity.FlyerHandle{}.IsGrocery())
}
