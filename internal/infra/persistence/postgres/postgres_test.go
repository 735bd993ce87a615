package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitBetween(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 30 * time.Millisecond}
	cur := sql.DBStats{WaitCount: 7, WaitDuration: 110 * time.Millisecond}

	wait := waitBetween(prev, cur)

	assert.Equal(t, int64(4), wait.count)
	assert.Equal(t, 80*time.Millisecond, wait.duration)
	assert.Equal(t, 20*time.Millisecond, wait.average())
}

func TestPoolWaitAverageWithoutWaits(t *testing.T) {
	assert.Zero(t, poolWait{}.average())
}
