package handler

// DI for all handlers.

import (
	"context"
	"sync"

	"github.com/yumyai/seqspec/pkg/db"
	"github.com/yumyai/seqspec/pkg/model"
)

type DBContext struct {
	Store *db.AssayStore

	// serializes load-mutate-save on stored assays
	mu sync.Mutex
}

func NewDBContext(store *db.AssayStore) *DBContext {
	return &DBContext{Store: store}
}

// loadAssay returns a private copy of a stored assay.
func (dbctx *DBContext) loadAssay(ctx context.Context, assayID string) (*model.Assay, error) {
	return dbctx.Store.Get(ctx, assayID)
}

// updateAssay loads an assay, applies fn and saves the result. Nothing is
// saved when fn fails, so a rejected edit leaves the stored assay unchanged.
func (dbctx *DBContext) updateAssay(ctx context.Context, assayID string, fn func(*model.Assay) error) (*model.Assay, string, error) {
	dbctx.mu.Lock()
	defer dbctx.mu.Unlock()

	a, err := dbctx.Store.Get(ctx, assayID)
	if err != nil {
		return nil, "", err
	}
	if err := fn(a); err != nil {
		return nil, "", err
	}

	revision, err := dbctx.Store.Put(ctx, a)
	if err != nil {
		return nil, "", err
	}
	return a, revision, nil
}

// putAssay stores a new or replaced assay under the same lock as updates.
func (dbctx *DBContext) putAssay(ctx context.Context, a *model.Assay) (string, error) {
	dbctx.mu.Lock()
	defer dbctx.mu.Unlock()
	return dbctx.Store.Put(ctx, a)
}

func (dbctx *DBContext) deleteAssay(ctx context.Context, assayID string) error {
	dbctx.mu.Lock()
	defer dbctx.mu.Unlock()
	return dbctx.Store.Delete(ctx, assayID)
}
