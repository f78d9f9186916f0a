package entity

import "context"

// Store provides field-level persistence for User, Folder and File records.
//
// The interface is deliberately narrow: point reads of whole records and
// point writes of individual fields. All hierarchy and authorization
// semantics (containment consistency, cycle prevention, grant derivation)
// live in the drive engine on top of this adapter; implementations only
// guarantee per-operation (per-row) atomicity.
//
// Set semantics:
// The AddTo* operations are set inserts: adding a member that is already
// present is a no-op success, and the set never holds duplicates. The
// RemoveFrom* operations are likewise idempotent: removing an absent member
// succeeds. This backs the engine's idempotent share operation.
//
// The RemoveFromFileUsers and RemoveFromFolderUsers operations exist because
// the data model supports revoking a grant, but no engine operation currently
// calls them.
//
// Error handling:
// Operations return *StoreError with ErrNotFound when the addressed record
// does not exist, ErrAlreadyExists on duplicate creation, and ErrIO for
// underlying persistence failures. Context cancellation errors are returned
// as-is.
//
// Thread safety:
// Implementations must be safe for concurrent use by multiple goroutines.
type Store interface {
	// CreateUser stores a new user record.
	// Returns ErrAlreadyExists if the id is taken.
	CreateUser(ctx context.Context, user *User) error

	// GetUser retrieves a user record by id.
	GetUser(ctx context.Context, id string) (*User, error)

	// CreateFile stores a new file record.
	// Returns ErrAlreadyExists if the id is taken.
	CreateFile(ctx context.Context, file *File) error

	// GetFile retrieves a file record by id.
	GetFile(ctx context.Context, id string) (*File, error)

	// SetFileParentFolder updates a file's parent pointer. An empty parentID
	// detaches the file to root. The write is atomic: a concurrent reader
	// sees either the old or the new parent, never a torn value.
	SetFileParentFolder(ctx context.Context, id, parentID string) error

	// AddToFileUsers inserts userID into a file's direct-grant set.
	AddToFileUsers(ctx context.Context, id, userID string) error

	// RemoveFromFileUsers removes userID from a file's direct-grant set.
	RemoveFromFileUsers(ctx context.Context, id, userID string) error

	// CreateFolder stores a new folder record.
	// Returns ErrAlreadyExists if the id is taken.
	CreateFolder(ctx context.Context, folder *Folder) error

	// GetFolder retrieves a folder record by id.
	GetFolder(ctx context.Context, id string) (*Folder, error)

	// SetFolderParentFolder updates a folder's parent pointer. An empty
	// parentID detaches the folder to root.
	SetFolderParentFolder(ctx context.Context, id, parentID string) error

	// AddToFolderUsers inserts userID into a folder's direct-grant set.
	AddToFolderUsers(ctx context.Context, id, userID string) error

	// RemoveFromFolderUsers removes userID from a folder's direct-grant set.
	RemoveFromFolderUsers(ctx context.Context, id, userID string) error

	// AddToFolderFiles inserts fileID into a folder's child-file set.
	AddToFolderFiles(ctx context.Context, folderID, fileID string) error

	// RemoveFromFolderFiles removes fileID from a folder's child-file set.
	RemoveFromFolderFiles(ctx context.Context, folderID, fileID string) error

	// AddToFolderFolders inserts childID into a folder's child-folder set.
	AddToFolderFolders(ctx context.Context, folderID, childID string) error

	// RemoveFromFolderFolders removes childID from a folder's child-folder set.
	RemoveFromFolderFolders(ctx context.Context, folderID, childID string) error

	// Healthcheck verifies the store is operational. In-memory
	// implementations return nil; persistent ones check the backend.
	Healthcheck(ctx context.Context) error

	// Close releases store resources. The store must not be used afterwards.
	Close() error
}
