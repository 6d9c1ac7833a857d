package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/breeqa/breeqa-server/pkg/db"
	"github.com/breeqa/breeqa-server/pkg/model"
	gormstore "github.com/breeqa/breeqa-server/pkg/server/store/gorm"
)

// orgCreateCmd represents the org create command
var orgCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an organization with an initial admin member",
	Long: `Create an organization with an initial admin member.

The admin user must already have a profile. Pass either their user id or
their email address. The creator is enrolled as an active admin member
of the new organization.

Example:
  breeqactl org create --name "Acme QA" --slug acme-qa --admin-email alice@example.com
  breeqactl org create --name "Acme QA" --slug acme-qa --admin 6f1c...`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		slug, _ := cmd.Flags().GetString("slug")
		adminID, _ := cmd.Flags().GetString("admin")
		adminEmail, _ := cmd.Flags().GetString("admin-email")

		org, err := createOrganization(name, slug, adminID, adminEmail)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create organization: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created organization '%s'\n", org.Name)
		fmt.Printf("Organization id: %s\n", org.ID)
	},
}

func init() {
	orgCmd.AddCommand(orgCreateCmd)
	orgCreateCmd.Flags().StringP("name", "n", "", "Organization display name")
	orgCreateCmd.Flags().StringP("slug", "s", "", "URL-safe organization slug")
	orgCreateCmd.Flags().String("admin", "", "User id of the initial admin")
	orgCreateCmd.Flags().String("admin-email", "", "Email of the initial admin")
	_ = orgCreateCmd.MarkFlagRequired("name")
	_ = orgCreateCmd.MarkFlagRequired("slug")
}

func createOrganization(name, slug, adminID, adminEmail string) (*model.Organization, error) {
	if adminID == "" && adminEmail == "" {
		return nil, fmt.Errorf("one of --admin or --admin-email is required")
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	if adminID == "" {
		users := gormstore.NewUsersStore(database)
		profile, err := users.FetchByEmail(adminEmail)
		if err != nil {
			return nil, fmt.Errorf("no user profile for %s: %w", adminEmail, err)
		}
		adminID = profile.ID
	}

	org := &model.Organization{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		CreatedBy: adminID,
	}

	orgs := gormstore.NewOrganizationsStore(database)
	if err := orgs.Create(org, adminID); err != nil {
		return nil, err
	}

	return org, nil
}
