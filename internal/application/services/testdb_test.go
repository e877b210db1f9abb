package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"purple-insta/internal/infrastructure/db"
)

var testDBCounter int64

// newTestDB opens a uniquely named in-memory sqlite database. The shared
// cache keeps every pooled connection on the same database; the unique name
// keeps tests isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBCounter, 1))

	gdb, err := db.Connect("", dsn)
	require.NoError(t, err)
	return gdb
}
