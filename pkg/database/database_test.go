package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecommerce-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestDSN(t *testing.T) {
	dsn := DSN(utils.DatabaseConfig{
		Host: "db", Port: "5433", Name: "shop", User: "app", Password: "pw",
	})
	assert.Equal(t, "user=app password=pw dbname=shop sslmode=disable host=db port=5433", dsn)

	dsn = DSN(utils.DatabaseConfig{Host: "db", Port: "5432", SSLMode: "require"})
	assert.Contains(t, dsn, "sslmode=require")
}

func TestGormLogger_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewGormLogger(zap.New(core))
	fc := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is silent", func(t *testing.T) {
		l.Trace(context.Background(), time.Now(), fc, gorm.ErrRecordNotFound)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("errors are logged", func(t *testing.T) {
		l.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
		entries := logs.TakeAll()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
			assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
		}
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
		entries := logs.TakeAll()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		}
	})

	t.Run("silent mode", func(t *testing.T) {
		silent := l.LogMode(gormlogger.Silent)
		silent.Trace(context.Background(), time.Now(), fc, errors.New("boom"))
		assert.Equal(t, 0, logs.Len())
	})
}
