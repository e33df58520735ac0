package rit

import "github.com/AshhKetchup/Rit/internal/store"

// Store is the public interface for object persistence.
// Re-exported from internal/store for convenience.
type Store = store.Store
