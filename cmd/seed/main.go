// Command seed wipes and repopulates the database with demo tenants and
// users: acme and globex (both free), each with an admin and a member.
// All seeded accounts use the password "password".
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"notes-saas/config"
	"notes-saas/database"
	"notes-saas/internal/domain/notes"
	"notes-saas/internal/domain/tenants"
	"notes-saas/internal/domain/users"
	"notes-saas/internal/logging"
	"notes-saas/internal/store"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	slog.SetDefault(logger)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := seed(db); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database seeding completed")
}

func seed(db *gorm.DB) error {
	ctx := context.Background()

	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{&notes.Note{}, &users.User{}, &tenants.Tenant{}} {
		if err := session.Delete(model).Error; err != nil {
			return err
		}
	}
	slog.Info("cleared existing data")

	st := store.NewGorm(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, name := range []string{"Acme", "Globex"} {
		tenant := tenants.Tenant{
			Name:             name,
			Slug:             tenants.MakeSlug(name),
			SubscriptionPlan: tenants.PlanFree,
		}
		if err := st.CreateTenant(ctx, &tenant); err != nil {
			return err
		}
		slog.Info("tenant created", "slug", tenant.Slug)

		seedUsers := []users.User{
			{Email: "admin@" + tenant.Slug + ".test", Role: users.RoleAdmin, TenantID: tenant.ID},
			{Email: "user@" + tenant.Slug + ".test", Role: users.RoleMember, TenantID: tenant.ID},
		}
		for _, u := range seedUsers {
			u.PasswordHash = string(hash)
			if err := st.CreateUser(ctx, &u); err != nil {
				return err
			}
			slog.Info("user created", "email", u.Email, "role", string(u.Role))
		}
	}

	return nil
}
