package main

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sakthiswaran2705/rk-dail-admin/config"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/database"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/media"
)

// initLogger khởi tạo logger theo biến môi trường LOG_*
func initLogger() error {
	if err := logger.Init(nil); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
	return nil
}

// initDatabase kết nối MongoDB và tạo các index còn thiếu
func initDatabase(cfg *config.Configuration) (*mongo.Client, error) {
	client, err := database.GetInstance(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.CreateIndexes(ctx, client.Database(cfg.MongoDB_DBName), database.DirectoryIndexes()); err != nil {
		// Thiếu index chỉ làm chậm truy vấn, không chặn khởi động
		logger.GetAppLogger().WithError(err).Warn("Failed to create indexes")
	}
	return client, nil
}

// initMedia chọn backend lưu media theo MEDIA_BACKEND
func initMedia(cfg *config.Configuration) (media.Store, error) {
	log := logger.GetAppLogger()
	switch cfg.MediaBackend {
	case "s3":
		store, err := media.NewS3Store(media.S3Config{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			return nil, err
		}
		log.WithField("bucket", cfg.S3Bucket).Info("Media backend: S3")
		return store, nil
	default:
		log.WithField("root", cfg.MediaRoot).Info("Media backend: local filesystem")
		return media.NewLocalStore(cfg.MediaRoot), nil
	}
}
