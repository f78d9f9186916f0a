package badger

// Database Key Namespace Design
// ==============================
//
// BadgerDB is a key-value store, so prefixed keys organize the record types
// into logical namespaces. Every record is a point lookup by id; there are no
// range scans because the engine resolves all relationships through ids held
// on the records themselves.
//
// Data Type   Prefix   Key Format     Value Type
// =================================================
// User        "u:"     u:<id>         User (JSON)
// File        "f:"     f:<id>         File (JSON)
// Folder      "d:"     d:<id>         Folder (JSON)
const (
	// prefixUser is the key prefix for user records
	prefixUser = "u:"

	// prefixFile is the key prefix for file records
	prefixFile = "f:"

	// prefixFolder is the key prefix for folder records
	prefixFolder = "d:"
)

// keyUser generates the key for a user record.
func keyUser(id string) []byte {
	return []byte(prefixUser + id)
}

// keyFile generates the key for a file record.
func keyFile(id string) []byte {
	return []byte(prefixFile + id)
}

// keyFolder generates the key for a folder record.
func keyFolder(id string) []byte {
	return []byte(prefixFolder + id)
}
