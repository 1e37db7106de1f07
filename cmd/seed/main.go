package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/auth"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/catalog"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/config"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/db"
	"github.com/Kenneson972/ALLINCLUSIVE2.0-sub001/internal/models"
)

type seedUser struct {
	Username    string
	Email       string
	PasswordEnv string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	store := catalog.NewMongoStore(cols.Villas)
	service := catalog.NewService(store, cfg.Timezone)

	snapshot := catalog.ReleaseSnapshot()
	if err := service.Reseed(ctx, snapshot); err != nil {
		log.Fatalf("seed villas: %v", err)
	}
	log.Printf("seed villas: %d installed", len(snapshot))

	auditor := catalog.NewAuditor(catalog.AuditConfig{
		ExpectedTotal:        cfg.CatalogExpectedTotal,
		ExpectedDistribution: cfg.CatalogDistribution,
		RequiredVillas:       catalog.DefaultRequiredVillas(),
	})
	report, err := auditor.Run(ctx, store)
	if err != nil {
		log.Fatalf("seed audit: %v", err)
	}
	if !report.Passed {
		for _, issue := range report.Issues {
			log.Printf("seed audit issue [%s/%s]: %s", issue.Severity, issue.Kind, issue.Message)
		}
		log.Fatal("seed audit failed")
	}
	log.Printf("seed audit passed: %d villas, %d findings", report.TotalVillas, len(report.Issues))

	adminUsers := []seedUser{
		{
			Username:    envOrDefault("ADMIN_USER", "admin"),
			Email:       envOrDefault("ADMIN_EMAIL", ""),
			PasswordEnv: "ADMIN_PASSWORD",
		},
		{
			Username:    envOrDefault("ADMIN_USER_2", "admin2"),
			Email:       envOrDefault("ADMIN_EMAIL_2", ""),
			PasswordEnv: "ADMIN_PASSWORD_2",
		},
	}

	for _, admin := range adminUsers {
		password := os.Getenv(admin.PasswordEnv)
		if password == "" {
			log.Printf("seed admin: %s missing, skipping (%s)", admin.Username, admin.PasswordEnv)
			continue
		}
		if err := seedAdminUser(ctx, cols, admin.Username, admin.Email, password, cfg.Timezone); err != nil {
			log.Fatalf("seed admin error for %s: %v", admin.Username, err)
		}
	}

	log.Println("seed completed")
}

func seedAdminUser(ctx context.Context, cols *db.Collections, username, email, password string, loc *time.Location) error {
	if cols == nil || cols.Users == nil {
		return nil
	}
	if username == "" || password == "" {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	filter := bson.M{"username": username}
	set := bson.M{
		"password_hash": hash,
		"role":          models.UserRoleAdmin,
		"updated_at":    now,
	}
	if email != "" {
		set["email"] = email
	}
	setOnInsert := bson.M{
		"_id":        primitive.NewObjectID().Hex(),
		"username":   username,
		"created_at": now,
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": setOnInsert,
	}
	_, err = cols.Users.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
