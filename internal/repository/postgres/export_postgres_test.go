package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"qrdesk/internal/model"
	"qrdesk/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var exportColumns = []string{"id", "filename", "path", "size", "archive_key", "created_at"}

func TestExportPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewExportPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	exp := &model.Export{
		ID:         "test-uuid",
		Filename:   "qrcode-1.svg",
		Path:       "/home/ada/Downloads/qrcode-1.svg",
		Size:       1234,
		ArchiveKey: "exports/qrcode-1.svg",
		CreatedAt:  now,
	}

	rows := sqlmock.NewRows(exportColumns).
		AddRow(exp.ID, exp.Filename, exp.Path, exp.Size, exp.ArchiveKey, exp.CreatedAt)

	mock.ExpectQuery("INSERT INTO qr_exports").
		WithArgs(exp.ID, exp.Filename, exp.Path, exp.Size, exp.ArchiveKey, exp.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, exp)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, exp.ID, result.ID)
	assert.Equal(t, exp.Path, result.Path)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportPostgres_Create_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewExportPostgres(db)

	mock.ExpectQuery("INSERT INTO qr_exports").WillReturnError(errors.New("insert failed"))

	result, err := repo.Create(context.Background(), &model.Export{ID: "x"})

	assert.EqualError(t, err, "insert failed")
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewExportPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM qr_exports").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(exportColumns).
			AddRow("id-2", "qrcode-2.svg", "/d/qrcode-2.svg", 20, "", time.Now()).
			AddRow("id-1", "qrcode-1.svg", "/d/qrcode-1.svg", 10, "exports/qrcode-1.svg", time.Now())
		mock.ExpectQuery("SELECT (.+) FROM qr_exports ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, "id-2", res.Items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM qr_exports").
			WillReturnError(errors.New("count failed"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10})

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM qr_exports").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM qr_exports ORDER BY").
			WithArgs(5, 5).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("only-id"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 5, Offset: 5})

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
