package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the store and migrates the schema. A postgres DSN in
// databaseURL selects postgres; otherwise the local sqlite file is used.
// AutoMigrate is idempotent, so restarting against an existing file is safe.
func Connect(databaseURL, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(&UserModel{}, &PostModel{}, &CommentModel{}); err != nil {
		return nil, err
	}

	return gdb, nil
}
