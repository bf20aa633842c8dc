package mysql

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens a GORM MySQL handle, verifies connectivity with a ping, and
// enables dialect error translation so unique-constraint violations surface
// as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("mysql ping: %w", err)
	}

	return gdb, nil
}

// AutoMigrate creates or updates the three tables and their uniqueness
// constraints (usuario.email, ong.email, ong.cnpj).
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&usuarioModel{}, &ongModel{}, &petModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
