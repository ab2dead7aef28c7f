package main

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_waitForDB(t *testing.T) {
	attempts := 0
	err := waitForDB(time.Second*5, func() *sql.DB {
		attempts++
		if attempts < 2 {
			return nil
		}

		return &sql.DB{}
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)

	err = waitForDB(time.Millisecond*10, func() *sql.DB {
		return nil
	})
	assert.Equal(t, errDBUnavailable, err)
}
