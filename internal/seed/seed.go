// Package seed loads an initial set of users, folders, and files from a
// YAML file and applies it through the engine, so seeded state obeys the
// same grant rules as API-created state.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marmos91/dittodrive/internal/logger"
	"github.com/marmos91/dittodrive/pkg/drive"
)

// Spec is the root of a seed file.
type Spec struct {
	// Users to create before any nodes
	Users []UserSpec `yaml:"users"`

	// Folders rooted at the top of the hierarchy
	Folders []FolderSpec `yaml:"folders"`

	// Files placed at the root
	Files []FileSpec `yaml:"files"`
}

// UserSpec declares a user.
type UserSpec struct {
	ID string `yaml:"id"`
}

// FolderSpec declares a folder, its contents, and who it is shared with.
type FolderSpec struct {
	Name      string       `yaml:"name"`
	Owner     string       `yaml:"owner"`
	ShareWith []string     `yaml:"share_with"`
	Folders   []FolderSpec `yaml:"folders"`
	Files     []FileSpec   `yaml:"files"`
}

// FileSpec declares a file with inline contents.
type FileSpec struct {
	Name      string   `yaml:"name"`
	Owner     string   `yaml:"owner"`
	Contents  string   `yaml:"contents"`
	ShareWith []string `yaml:"share_with"`
}

// Load reads and parses a seed file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &spec, nil
}

// Result indexes the created nodes by their slash-separated seed path
// (e.g. "shared/reports", "shared/readme.txt").
type Result struct {
	Folders map[string]string
	Files   map[string]string
}

// Apply creates the seeded users and hierarchy through the engine.
//
// Users that already exist are skipped, so re-running against a persistent
// store does not fail on them. Folders and files are always created anew;
// seeding is meant for fresh stores.
func Apply(ctx context.Context, service *drive.Service, spec *Spec) (*Result, error) {
	result := &Result{
		Folders: make(map[string]string),
		Files:   make(map[string]string),
	}

	for _, user := range spec.Users {
		if _, err := service.CreateUser(ctx, user.ID); err != nil {
			if drive.IsCode(err, drive.ErrInvalidOperation) {
				logger.Info("seed: user %s already exists, skipping", user.ID)
				continue
			}
			return nil, fmt.Errorf("seed: failed to create user %s: %w", user.ID, err)
		}
	}

	for _, folder := range spec.Folders {
		if err := applyFolder(ctx, service, result, folder, "", ""); err != nil {
			return nil, err
		}
	}
	for _, file := range spec.Files {
		if err := applyFile(ctx, service, result, file, "", ""); err != nil {
			return nil, err
		}
	}

	logger.Info("seed: applied %d users, %d folders, %d files",
		len(spec.Users), len(result.Folders), len(result.Files))
	return result, nil
}

func applyFolder(ctx context.Context, service *drive.Service, result *Result, spec FolderSpec, parentID, parentPath string) error {
	folder, err := service.CreateFolder(ctx, spec.Owner, spec.Name, parentID)
	if err != nil {
		return fmt.Errorf("seed: failed to create folder %q: %w", spec.Name, err)
	}
	path := joinPath(parentPath, spec.Name)
	result.Folders[path] = folder.ID

	for _, child := range spec.Folders {
		if err := applyFolder(ctx, service, result, child, folder.ID, path); err != nil {
			return err
		}
	}
	for _, file := range spec.Files {
		if err := applyFile(ctx, service, result, file, folder.ID, path); err != nil {
			return err
		}
	}

	// Shares run after the subtree exists so they reach every node.
	for _, userID := range spec.ShareWith {
		if err := service.ShareFolder(ctx, spec.Owner, folder.ID, userID); err != nil {
			return fmt.Errorf("seed: failed to share folder %q with %s: %w", spec.Name, userID, err)
		}
	}
	return nil
}

func applyFile(ctx context.Context, service *drive.Service, result *Result, spec FileSpec, parentID, parentPath string) error {
	file, err := service.CreateFile(ctx, spec.Owner, spec.Name, parentID, []byte(spec.Contents))
	if err != nil {
		return fmt.Errorf("seed: failed to create file %q: %w", spec.Name, err)
	}
	result.Files[joinPath(parentPath, spec.Name)] = file.ID

	for _, userID := range spec.ShareWith {
		if err := service.ShareFile(ctx, spec.Owner, file.ID, userID); err != nil {
			return fmt.Errorf("seed: failed to share file %q with %s: %w", spec.Name, userID, err)
		}
	}
	return nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
