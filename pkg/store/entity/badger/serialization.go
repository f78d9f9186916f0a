package badger

import (
	"encoding/json"
	"fmt"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// Records are stored as JSON. The volumes here are metadata-sized, so the
// flexibility and debuggability of JSON outweigh the compactness of a binary
// encoding; the schema can also evolve without migrations.

func encodeUser(user *entity.User) ([]byte, error) {
	bytes, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}
	return bytes, nil
}

func decodeUser(bytes []byte) (*entity.User, error) {
	var user entity.User
	if err := json.Unmarshal(bytes, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

func encodeFile(file *entity.File) ([]byte, error) {
	bytes, err := json.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to encode file: %w", err)
	}
	return bytes, nil
}

func decodeFile(bytes []byte) (*entity.File, error) {
	var file entity.File
	if err := json.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}
	return &file, nil
}

func encodeFolder(folder *entity.Folder) ([]byte, error) {
	bytes, err := json.Marshal(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to encode folder: %w", err)
	}
	return bytes, nil
}

func decodeFolder(bytes []byte) (*entity.Folder, error) {
	var folder entity.Folder
	if err := json.Unmarshal(bytes, &folder); err != nil {
		return nil, fmt.Errorf("failed to decode folder: %w", err)
	}
	return &folder, nil
}

// addToSet inserts id into a slice-backed set, preserving order and
// uniqueness. Returns the slice unchanged when id is already present.
func addToSet(ids []string, id string) []string {
	for _, candidate := range ids {
		if candidate == id {
			return ids
		}
	}
	return append(ids, id)
}

// removeFromSet removes id from a slice-backed set. Removing an absent id is
// a no-op.
func removeFromSet(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
