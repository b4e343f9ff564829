package root

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avrilov/stride/internal/db"
	"github.com/avrilov/stride/internal/models"
	"github.com/avrilov/stride/internal/services"
)

// app wires the store and services for one command invocation. The
// resolved profile id is the verified requester id for every engine
// call; there is no other auth layer in the CLI.
type app struct {
	progress *services.ProgressService
	profile  models.Profile
}

func openApp() (*app, error) {
	loadDotEnv()

	dbPath := getEnv("STRIDE_DB", filepath.Join("data", "stride.db"))
	profileName := getEnv("STRIDE_PROFILE", "default")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	repos := db.NewRepositories(database)
	profile, err := services.NewProfileService(repos.Profiles).Resolve(profileName)
	if err != nil {
		return nil, fmt.Errorf("resolve profile %q: %w", profileName, err)
	}

	return &app{
		progress: services.NewProgressService(repos.Goals, repos.Days),
		profile:  profile,
	}, nil
}

// findGoal resolves a CLI argument to a goal view, matching goal id
// first and then exact title within the profile's goals.
func (application *app) findGoal(arg string) (services.GoalView, error) {
	arg = strings.TrimSpace(arg)

	view, err := application.progress.GetGoal(arg, application.profile.ID)
	if err == nil {
		return view, nil
	}

	views, err := application.progress.ListGoals(application.profile.ID)
	if err != nil {
		return services.GoalView{}, err
	}
	for _, candidate := range views {
		if candidate.Title == arg {
			return candidate, nil
		}
	}
	return services.GoalView{}, services.ErrGoalNotFound
}
