package memory

import (
	"testing"

	"github.com/superteam-academy/academy-server/pkg/academy/data/reward/tests"
)

func TestRewardMemoryStore(t *testing.T) {
	testStore := New()
	teardown := func() {
		testStore.(*store).reset()
	}
	tests.RunTests(t, testStore, teardown)
}
