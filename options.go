package rit

// Compression levels accepted by WithCompressionLevel.
const (
	CompressionFastest = 1
	CompressionDefault = 2
	CompressionBest    = 3
)

// DefaultConcurrency bounds parallel child processing per directory
// during a snapshot.
const DefaultConcurrency = 4

// OpenOptions configures a repository.
type OpenOptions struct {
	CompressionLevel int
	CacheSize        int
	Concurrency      int
	IgnoreFile       string
}

// OpenOption is a functional option for configuring Open.
type OpenOption func(*OpenOptions)

func defaultOptions() *OpenOptions {
	return &OpenOptions{
		CompressionLevel: CompressionDefault,
		CacheSize:        256,
		Concurrency:      DefaultConcurrency,
		IgnoreFile:       ".ritignore",
	}
}

// WithCompressionLevel sets the zlib level used for object files.
func WithCompressionLevel(level int) OpenOption {
	return func(o *OpenOptions) { o.CompressionLevel = level }
}

// WithCacheSize sets the in-memory object cache capacity.
func WithCacheSize(n int) OpenOption {
	return func(o *OpenOptions) {
		if n > 0 {
			o.CacheSize = n
		}
	}
}

// WithConcurrency sets the number of parallel workers per directory
// during snapshots.
func WithConcurrency(n int) OpenOption {
	return func(o *OpenOptions) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}

// WithIgnoreFile sets the ignore file name looked up at the repository
// root (default ".ritignore").
func WithIgnoreFile(name string) OpenOption {
	return func(o *OpenOptions) { o.IgnoreFile = name }
}
