package drive

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marmos91/dittodrive/internal/logger"
	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// CreateUser registers a new user.
//
// An empty id asks the engine to generate one (UUIDv7, so ids sort by
// creation time). A duplicate id is rejected as ErrInvalidOperation.
func (service *Service) CreateUser(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if id == "" {
		generated, err := uuid.NewV7()
		if err != nil {
			return nil, NewStoreError("failed to generate user id", err)
		}
		id = generated.String()
	}

	user := &entity.User{
		ID:        id,
		CreatedAt: time.Now().UTC(),
	}

	if err := service.entities.CreateUser(ctx, user); err != nil {
		return nil, translateStoreError(err, "failed to create user")
	}

	logger.Info("created user %s", id)
	return user, nil
}

// CreateFile creates a file under parentFolderID and stores its contents.
//
// The creator receives a direct grant on the new file. An empty
// parentFolderID places the file at the root; otherwise the actor must be
// able to reach the parent folder. All checks run before the first write;
// contents are stored before the record so the record never references
// missing bytes.
func (service *Service) CreateFile(ctx context.Context, actorID, name, parentFolderID string, data []byte) (*entity.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := service.entities.GetUser(ctx, actorID); err != nil {
		return nil, translateStoreError(err, "failed to load user")
	}

	if parentFolderID != "" {
		if err := service.requireAccess(ctx, actorID, KindFolder, parentFolderID); err != nil {
			return nil, err
		}
	}

	fileID, err := newID()
	if err != nil {
		return nil, err
	}
	contentID, err := newID()
	if err != nil {
		return nil, err
	}

	if err := service.contents.WriteContent(ctx, contentID, data); err != nil {
		return nil, NewStoreError("failed to write file contents", err)
	}

	file := &entity.File{
		ID:           fileID,
		Name:         name,
		ContentID:    contentID,
		ParentFolder: parentFolderID,
		Users:        []string{actorID},
		Size:         uint64(len(data)),
		CreatedAt:    time.Now().UTC(),
	}

	if err := service.entities.CreateFile(ctx, file); err != nil {
		return nil, translateStoreError(err, "failed to create file")
	}

	if parentFolderID != "" {
		if err := service.entities.AddToFolderFiles(ctx, parentFolderID, fileID); err != nil {
			return nil, translateStoreError(err, "failed to attach file to parent folder")
		}
	}

	logger.Info("created file %s (%q) under folder %q for user %s", fileID, name, parentFolderID, actorID)
	return file, nil
}

// CreateFolder creates a folder under parentFolderID.
//
// The creator receives a direct grant on the new folder. An empty
// parentFolderID places the folder at the root.
func (service *Service) CreateFolder(ctx context.Context, actorID, name, parentFolderID string) (*entity.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := service.entities.GetUser(ctx, actorID); err != nil {
		return nil, translateStoreError(err, "failed to load user")
	}

	if parentFolderID != "" {
		if err := service.requireAccess(ctx, actorID, KindFolder, parentFolderID); err != nil {
			return nil, err
		}
	}

	folderID, err := newID()
	if err != nil {
		return nil, err
	}

	folder := &entity.Folder{
		ID:           folderID,
		Name:         name,
		ParentFolder: parentFolderID,
		Users:        []string{actorID},
		CreatedAt:    time.Now().UTC(),
	}

	if err := service.entities.CreateFolder(ctx, folder); err != nil {
		return nil, translateStoreError(err, "failed to create folder")
	}

	if parentFolderID != "" {
		if err := service.entities.AddToFolderFolders(ctx, parentFolderID, folderID); err != nil {
			return nil, translateStoreError(err, "failed to attach folder to parent folder")
		}
	}

	logger.Info("created folder %s (%q) under folder %q for user %s", folderID, name, parentFolderID, actorID)
	return folder, nil
}

// GetFile returns a file's record and contents.
//
// The actor must be able to reach the file directly or through an ancestor
// folder; otherwise ErrForbidden.
func (service *Service) GetFile(ctx context.Context, actorID, fileID string) (*entity.File, []byte, error) {
	if err := service.requireAccess(ctx, actorID, KindFile, fileID); err != nil {
		return nil, nil, err
	}

	file, err := service.entities.GetFile(ctx, fileID)
	if err != nil {
		return nil, nil, translateStoreError(err, "failed to load file")
	}

	data, err := service.contents.ReadContent(ctx, file.ContentID)
	if err != nil {
		return nil, nil, NewStoreError(fmt.Sprintf("failed to read contents of file %s", fileID), err)
	}

	return file, data, nil
}

// GetFolder returns a folder's record.
//
// The actor must be able to reach the folder directly or through an ancestor.
func (service *Service) GetFolder(ctx context.Context, actorID, folderID string) (*entity.Folder, error) {
	if err := service.requireAccess(ctx, actorID, KindFolder, folderID); err != nil {
		return nil, err
	}

	folder, err := service.entities.GetFolder(ctx, folderID)
	if err != nil {
		return nil, translateStoreError(err, "failed to load folder")
	}
	return folder, nil
}

// newID generates a time-ordered unique id for a new node.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", NewStoreError("failed to generate id", err)
	}
	return id.String(), nil
}
