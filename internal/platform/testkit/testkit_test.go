package testkit

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	Env(t, map[string]string{"SSB_TABLE": "07241", "PRICES_THROTTLE": "5"})
	assert.Equal(t, "07241", os.Getenv("SSB_TABLE"))
	assert.Equal(t, "5", os.Getenv("PRICES_THROTTLE"))
}

func TestFixture(t *testing.T) {
	assert.Equal(t, "2015K4\n", string(Fixture(t, "quarter.txt")))
}
