// invctl is an operator CLI for the inventory backend: it creates the
// initial admin account and resets user passwords against the same database
// the API server uses.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"
	"github.com/EliseyAgustin/Sistema-de-Inventario/pkg/database"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "invctl",
		Short: "Admin tooling for Sistema de Inventario",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				log.Println("Warning: .env file not found, relying on system env")
			}
		},
	}

	rootCmd.AddCommand(createAdminCmd(), resetPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func createAdminCmd() *cobra.Command {
	var (
		username string
		password string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := database.ConnectDB()

			var existing model.User
			err := db.First(&existing, "username = ?", username).Error
			if err == nil {
				return fmt.Errorf("user %q already exists", username)
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			admin := model.User{
				Username: username,
				Name:     name,
				Role:     model.RoleAdmin,
			}
			if err := admin.SetPassword(password); err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			if err := db.Create(&admin).Error; err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			log.Printf("Admin user %q created (id=%d)", username, admin.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "admin", "admin username")
	cmd.Flags().StringVar(&password, "password", "admin123", "admin password")
	cmd.Flags().StringVar(&name, "name", "Administrator", "display name")

	return cmd
}

func resetPasswordCmd() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset a user's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			db := database.ConnectDB()

			var user model.User
			if err := db.First(&user, "username = ?", username).Error; err != nil {
				return fmt.Errorf("user %q not found: %w", username, err)
			}

			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
				return fmt.Errorf("failed to update password: %w", err)
			}

			log.Printf("Password for %q has been reset", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "admin", "username to reset")
	cmd.Flags().StringVar(&password, "password", "", "new password")
	cmd.MarkFlagRequired("password")

	return cmd
}
