package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Inspect the supported job roles and their scoring profiles",
	RunE:  runRoles,
}

var rolesProfilesFile string

func init() {
	rolesCmd.Flags().StringVar(&rolesProfilesFile, "profiles", "", "Path to a role profiles file to validate and list instead of the built-ins")

	rootCmd.AddCommand(rolesCmd)
}

func runRoles(_ *cobra.Command, _ []string) error {
	profiles := roles.Profiles()

	if rolesProfilesFile == "" {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		rolesProfilesFile = cfg.RoleProfilesPath
	}
	if rolesProfilesFile != "" {
		loaded, err := roles.LoadProfiles(rolesProfilesFile)
		if err != nil {
			return fmt.Errorf("failed to load role profiles: %w", err)
		}
		profiles = loaded
		_, _ = fmt.Fprintf(os.Stdout, "Loaded %d role profiles from %s\n\n", len(loaded), rolesProfilesFile)
	}

	for _, role := range types.AllRoles {
		profile, ok := profiles[role]
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "%-28s threshold=%d bonus=%d weights(s/e/ed/k)=%.2f/%.2f/%.2f/%.2f\n",
			role,
			profile.MinimumThreshold,
			profile.ContextualBonus,
			profile.Weights.Skills,
			profile.Weights.Experience,
			profile.Weights.Education,
			profile.Weights.Keyword,
		)
	}
	return nil
}
