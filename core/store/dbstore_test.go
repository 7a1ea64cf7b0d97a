package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestDBStoreFind(t *testing.T) {
	db, mock := setupMockDB(t)
	s := NewDBStore(db)

	rows := sqlmock.NewRows([]string{"id", "name", "document_id", "appearance"}).
		AddRow(1, "Steel - Bolt Thread Template", "doc-1", `{"name":"Appearance","schema":"prism"}`).
		AddRow(2, "Steel - Bolt Thread M12", "doc-1", "").
		AddRow(3, "Unrelated Material", "doc-1", "")

	mock.ExpectQuery("SELECT \\* FROM `materials`").WillReturnRows(rows)

	mats, err := s.Find(context.Background(), `.+ - Bolt Thread M\d+`)
	require.NoError(t, err)
	require.Len(t, mats, 1)
	assert.Equal(t, "Steel - Bolt Thread M12", mats[0].Name)
	assert.Equal(t, "2", mats[0].ID)
	assert.Nil(t, mats[0].Appearance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStoreFind_Pattern(t *testing.T) {
	db, mock := setupMockDB(t)
	s := NewDBStore(db)

	// Pattern is anchored: a name that merely contains a match is excluded.
	rows := sqlmock.NewRows([]string{"id", "name", "document_id", "appearance"}).
		AddRow(1, "prefix Steel - Bolt Thread M12 suffix", "doc-1", "")
	mock.ExpectQuery("SELECT \\* FROM `materials`").WillReturnRows(rows)

	mats, err := s.Find(context.Background(), `.+ - Bolt Thread M\d+`)
	require.NoError(t, err)
	assert.Empty(t, mats)

	_, err = s.Find(context.Background(), `([`)
	assert.Error(t, err)
}

func TestDBStoreFind_CorruptAppearance(t *testing.T) {
	db, mock := setupMockDB(t)
	s := NewDBStore(db)

	rows := sqlmock.NewRows([]string{"id", "name", "document_id", "appearance"}).
		AddRow(1, "Steel - Bolt Thread M12", "doc-1", "{not json")
	mock.ExpectQuery("SELECT \\* FROM `materials`").WillReturnRows(rows)

	_, err := s.Find(context.Background(), `.+`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt appearance")
}

func TestDBStoreCreate(t *testing.T) {
	db, mock := setupMockDB(t)
	s := NewDBStore(db)

	template := &Material{
		ID:         "1",
		Name:       "Steel - Bolt Thread Template",
		DocumentID: "doc-1",
		Appearance: gradientAppearance(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `materials`").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	created, err := s.Create(context.Background(), template, "Steel - Bolt Thread M12", []Property{
		DoubleProp(PropScaleX, 1.75),
	})
	require.NoError(t, err)
	assert.Equal(t, "42", created.ID)
	assert.Equal(t, "Steel - Bolt Thread M12", created.Name)

	// The template itself stays untouched.
	assert.Equal(t, "Steel - Bolt Thread Template", template.Name)
	sx, _ := created.Appearance.AssetProperty(PropBump).Property(PropScaleX)
	assert.Equal(t, 1.75, sx.Num)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStoreDelete(t *testing.T) {
	t.Run("Existing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		s := NewDBStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `materials`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := s.Delete(context.Background(), MaterialRef{ID: "42", Name: "Steel - Bolt Thread M12"})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		s := NewDBStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `materials`").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := s.Delete(context.Background(), MaterialRef{ID: "42", Name: "gone"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("BadID", func(t *testing.T) {
		db, _ := setupMockDB(t)
		s := NewDBStore(db)

		err := s.Delete(context.Background(), MaterialRef{ID: "not-a-number"})
		assert.Error(t, err)
	})
}

func TestDBStoreRun(t *testing.T) {
	db, mock := setupMockDB(t)
	s := NewDBStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `materials`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Run(context.Background(), "reconcile pass", func(tx Store) error {
		return tx.Delete(context.Background(), MaterialRef{ID: "7", Name: "x"})
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStoreRun_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	s := NewDBStore(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := s.Run(context.Background(), "reconcile pass", func(tx Store) error {
		return assert.AnError
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
