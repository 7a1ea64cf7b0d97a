package mocks

import (
	"context"

	"bolt-manager/core/store"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of store.Store.
type Store struct {
	mock.Mock
}

func (m *Store) Find(ctx context.Context, namePattern string) ([]*store.Material, error) {
	args := m.Called(ctx, namePattern)
	if mats, ok := args.Get(0).([]*store.Material); ok {
		return mats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Create(ctx context.Context, template *store.Material, name string, edits []store.Property) (*store.Material, error) {
	args := m.Called(ctx, template, name, edits)
	if mat, ok := args.Get(0).(*store.Material); ok {
		return mat, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Delete(ctx context.Context, ref store.MaterialRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// Transactor is a mock implementation of store.Transactor. It invokes the
// body with Inner so tests exercise the transactional path.
type Transactor struct {
	mock.Mock
	Inner store.Store
}

func (m *Transactor) Run(ctx context.Context, name string, fn func(tx store.Store) error) error {
	args := m.Called(ctx, name)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.Inner)
}
