package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ninetd/ninetd/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGormTaskRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "status", "priority", "tags", "created_at", "updated_at"}).
		AddRow(2, 7, "newer", "open", "medium", `["home"]`, now, now).
		AddRow(1, 7, "older", "done", "high", `[]`, now.Add(-time.Hour), now)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `task_records` WHERE user_id = ? ORDER BY created_at DESC, id DESC",
	)).WithArgs(uint64(7)).WillReturnRows(rows)

	tasks, err := repo.ListByUser(7)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "newer", tasks[0].Title)
	require.Equal(t, []string{"home"}, tasks[0].Tags)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_DeleteScopesToUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM `task_records` WHERE id = ? AND user_id = ?",
	)).WithArgs(uint64(42), uint64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(7, 42))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_DeleteMissingRowIsNoError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM `task_records` WHERE id = ? AND user_id = ?",
	)).WithArgs(uint64(99), uint64(7)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(7, 99))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_UpdateTouchesOnlySelectedColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `task_records` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(7, 42, &models.TaskRecord{
		Title:    "renamed",
		Status:   "done",
		Priority: "high",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
