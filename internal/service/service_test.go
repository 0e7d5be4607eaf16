package service_test

import (
	"path/filepath"
	"testing"

	"feedback-forms-be/internal/model"
	"feedback-forms-be/internal/repository/specification"
	"feedback-forms-be/internal/repository/unitofwork"
	"feedback-forms-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestFactory opens a throwaway sqlite database, the same way a dev
// deployment runs without DB_CONNECTION_STRING.
func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	return unitofwork.NewRepositoryFactory(db)
}

func byFormId(formId uuid.UUID) specification.ByFormID {
	return specification.ByFormID{FormID: formId}
}
