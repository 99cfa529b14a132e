package client

import (
	"log"
	"time"

	"course-checkout-api/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitMysqlClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		// duplicate-key inserts surface as gorm.ErrDuplicatedKey, so the
		// unique email constraint closes the signup pre-check race
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Payment{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
