package entity

import "time"

// User is an identity record. Identity is asserted by the request boundary,
// never verified here; the ID is an opaque unique string.
//
// The engine does not keep per-user lists of owned files and folders. All
// ownership and reachability is derived from the grant sets and parent links
// on the nodes themselves, so any such list would be redundant bookkeeping
// that could drift from the authoritative state.
type User struct {
	// ID is the opaque identity token
	ID string `json:"id"`

	// CreatedAt is the record creation time
	CreatedAt time.Time `json:"created_at"`
}

// Folder is a node in the hierarchy that can contain files and folders.
//
// The ParentFolder pointer and the parent's child sets are kept consistent by
// the engine: a folder F is in P.Folders iff F.ParentFolder == P.ID. The store
// itself only offers field-level mutations and does not enforce this.
type Folder struct {
	// ID is the opaque unique folder id
	ID string `json:"id"`

	// Name is an optional human-readable name
	Name string `json:"name,omitempty"`

	// ParentFolder is the id of the enclosing folder, or "" for a root
	ParentFolder string `json:"parent_folder,omitempty"`

	// Users is the set of user ids with a direct grant on this folder
	Users []string `json:"users"`

	// Files is the set of file ids whose ParentFolder is this folder
	Files []string `json:"files"`

	// Folders is the set of folder ids whose ParentFolder is this folder
	Folders []string `json:"folders"`

	// CreatedAt is the record creation time
	CreatedAt time.Time `json:"created_at"`
}

// File is a leaf node in the hierarchy.
//
// File contents are not stored in the entity record. The record carries a
// ContentID referencing a blob in the content store, so metadata and content
// can scale and be backed independently.
type File struct {
	// ID is the opaque unique file id
	ID string `json:"id"`

	// Name is an optional human-readable name
	Name string `json:"name,omitempty"`

	// ContentID references the file contents in the content store.
	// Empty for files created without contents.
	ContentID string `json:"content_id,omitempty"`

	// ParentFolder is the id of the enclosing folder, or "" for a root
	ParentFolder string `json:"parent_folder,omitempty"`

	// Users is the set of user ids with a direct grant on this file
	Users []string `json:"users"`

	// Size is the content size in bytes
	Size uint64 `json:"size"`

	// CreatedAt is the record creation time
	CreatedAt time.Time `json:"created_at"`
}

// HasUser reports whether userID is in the folder's direct-grant set.
func (f *Folder) HasUser(userID string) bool {
	return containsID(f.Users, userID)
}

// HasUser reports whether userID is in the file's direct-grant set.
func (f *File) HasUser(userID string) bool {
	return containsID(f.Users, userID)
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
