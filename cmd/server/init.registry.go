package main

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sakthiswaran2705/rk-dail-admin/internal/database"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/logger"
	"github.com/sakthiswaran2705/rk-dail-admin/internal/registry"
)

// InitCollections đăng ký các collection MongoDB vào registry
func InitCollections(db *mongo.Database) (*registry.Registry[*mongo.Collection], error) {
	log := logger.GetAppLogger()
	reg := registry.NewRegistry[*mongo.Collection]()

	for _, name := range database.CollectionNames() {
		registered, err := reg.Register(name, db.Collection(name))
		if err != nil {
			log.WithError(err).Errorf("Failed to register collection %s", name)
			return nil, err
		}
		if registered {
			log.Debugf("Collection %s registered successfully", name)
		} else {
			log.Warnf("Collection %s already registered", name)
		}
	}
	log.Info("Initialized collection registry")
	return reg, nil
}
