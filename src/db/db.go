// Package db mirrors guild configuration snapshots to MongoDB when a
// connection string is configured. The flat-file store stays authoritative;
// the mirror exists for external dashboards and backup.
package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/config"
	"github.com/ihyos/YolooCloud-Open-Source-Version-5.3.2/src/guildconfig"
)

var client *mongo.Client

// Connect opens the mirror connection. A missing URI disables the mirror
// without error.
func Connect(ctx context.Context) error {
	if config.MongoURI == "" {
		return nil
	}
	c, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
	if err != nil {
		return err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx, nil); err != nil {
		return err
	}
	client = c
	log.Println("[DB] config mirror connected")
	return nil
}

// Enabled reports whether the mirror is active.
func Enabled() bool {
	return client != nil
}

// MirrorConfigs upserts every guild's config document. Failures are logged
// and swallowed; the mirror must never block the bot.
func MirrorConfigs(ctx context.Context) {
	if client == nil {
		return
	}
	coll := client.Database("yoloo").Collection("guild_configs")
	for guildID, cfg := range guildconfig.Snapshot() {
		_, err := coll.UpdateOne(ctx,
			bson.M{"_id": guildID},
			bson.M{"$set": bson.M{"config": cfg, "updatedAt": time.Now().UTC()}},
			options.Update().SetUpsert(true))
		if err != nil {
			log.Printf("[DB] mirror failed for guild %s: %v", guildID, err)
		}
	}
}

// Close shuts the mirror down.
func Close(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("[DB] disconnect: %v", err)
	}
	client = nil
}
