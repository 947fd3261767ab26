package autojson

// defaultStore backs the package-level API with the host filesystem.
var defaultStore = New()

// LoadDir calls Store.LoadDir on the host filesystem.
func LoadDir(dir string, recursive, createMissing bool) (map[string]any, error) {
	return defaultStore.LoadDir(dir, recursive, createMissing)
}

// Read calls Store.Read on the host filesystem.
func Read(path string) (any, error) {
	return defaultStore.Read(path)
}

// ReadInto calls Store.ReadInto on the host filesystem.
func ReadInto(path string, out any) error {
	return defaultStore.ReadInto(path, out)
}

// Write calls Store.Write on the host filesystem.
func Write(path string, data any, opts ...WriteOption) error {
	return defaultStore.Write(path, data, opts...)
}

// Update calls Store.Update on the host filesystem.
func Update(path string, updates map[string]any, createMissing bool) (map[string]any, error) {
	return defaultStore.Update(path, updates, createMissing)
}

// Delete calls Store.Delete on the host filesystem.
func Delete(path string) (bool, error) {
	return defaultStore.Delete(path)
}

// Create calls Store.Create on the host filesystem.
func Create(path string, data any, overwrite bool, opts ...WriteOption) (bool, error) {
	return defaultStore.Create(path, data, overwrite, opts...)
}

// Exists calls Store.Exists on the host filesystem.
func Exists(path string) bool {
	return defaultStore.Exists(path)
}
