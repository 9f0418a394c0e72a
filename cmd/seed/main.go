package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chonapi/internal/catalog"
	"chonapi/internal/config"
)

// Loads the compiled-in question catalog, menus and archetypes into
// MongoDB so analysts can join submissions against them.
func main() {
	cfg := config.Load()

	if err := catalog.Validate(); err != nil {
		log.Fatalf("Catalog validation failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)

	questions := catalog.Questions()
	questionColl := db.Collection("questions")
	for i := range questions {
		filter := bson.M{"_id": questions[i].ID}
		opts := options.Replace().SetUpsert(true)
		if _, err := questionColl.ReplaceOne(ctx, filter, questions[i], opts); err != nil {
			log.Fatalf("Failed to upsert question %d: %v", questions[i].ID, err)
		}
	}

	menus := catalog.Menus()
	menuColl := db.Collection("menus")
	for i := range menus {
		filter := bson.M{"_id": menus[i].Identity}
		opts := options.Replace().SetUpsert(true)
		if _, err := menuColl.ReplaceOne(ctx, filter, menus[i], opts); err != nil {
			log.Fatalf("Failed to upsert menu %s: %v", menus[i].Identity, err)
		}
	}

	archetypes := catalog.Archetypes()
	archetypeColl := db.Collection("archetypes")
	for i := range archetypes {
		filter := bson.M{"_id": archetypes[i].ID}
		opts := options.Replace().SetUpsert(true)
		if _, err := archetypeColl.ReplaceOne(ctx, filter, archetypes[i], opts); err != nil {
			log.Fatalf("Failed to upsert archetype %s: %v", archetypes[i].ID, err)
		}
	}

	fmt.Printf("Seeded %d questions, %d menus, %d archetypes\n",
		len(questions), len(menus), len(archetypes))
}
