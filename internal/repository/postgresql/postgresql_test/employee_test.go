package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dealerdesk/backoffice-go/internal/domain/employee"
	"github.com/dealerdesk/backoffice-go/internal/pkg/database"
	"github.com/dealerdesk/backoffice-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDatabase connects to the database named by TEST_DATABASE_URL and skips
// the test when the variable is unset, so the suite still runs without a
// local PostgreSQL.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(context.Background(), "TRUNCATE TABLE employees CASCADE")
	require.NoError(t, err)

	return db
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	salary := decimal.NewFromInt(25000)
	created, err := repo.Create(ctx, employee.Employee{
		ID:           uuid.New().String(),
		EmployeeCode: "EMP-001",
		FullName:     "Arif Rahman",
		Grade:        "Senior",
		HireDate:     time.Date(2022, time.January, 10, 0, 0, 0, 0, time.UTC),
		Status:       employee.StatusActive,
		BaseSalary:   &salary,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", found.EmployeeCode)
	assert.Equal(t, "Arif Rahman", found.FullName)
	require.NotNil(t, found.BaseSalary)
	assert.True(t, found.BaseSalary.Equal(salary))

	// Duplicate code must be rejected
	_, err = repo.Create(ctx, employee.Employee{
		ID:           uuid.New().String(),
		EmployeeCode: "EMP-001",
		FullName:     "Duplicate",
		Grade:        "Junior",
		HireDate:     time.Now(),
		Status:       employee.StatusActive,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeRepository_GetActiveExcludesResigned(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	active, err := repo.Create(ctx, employee.Employee{
		ID:           uuid.New().String(),
		EmployeeCode: "EMP-010",
		FullName:     "Active One",
		Grade:        "Junior",
		HireDate:     time.Now(),
		Status:       employee.StatusActive,
	})
	require.NoError(t, err)

	resigned, err := repo.Create(ctx, employee.Employee{
		ID:           uuid.New().String(),
		EmployeeCode: "EMP-011",
		FullName:     "Resigned One",
		Grade:        "Junior",
		HireDate:     time.Now(),
		Status:       employee.StatusResigned,
	})
	require.NoError(t, err)

	list, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)
	assert.NotEqual(t, resigned.ID, list[0].ID)
}

func TestEmployeeRepository_Update(t *testing.T) {
	db := testDatabase(t)
	repo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, employee.Employee{
		ID:           uuid.New().String(),
		EmployeeCode: "EMP-020",
		FullName:     "Before Update",
		Grade:        "Junior",
		HireDate:     time.Now(),
		Status:       employee.StatusActive,
	})
	require.NoError(t, err)

	newName := "After Update"
	newStatus := string(employee.StatusResigned)
	resignation := "2026-06-30"
	err = repo.Update(ctx, employee.UpdateEmployeeRequest{
		ID:              created.ID,
		FullName:        &newName,
		Status:          &newStatus,
		ResignationDate: &resignation,
	})
	require.NoError(t, err)

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After Update", updated.FullName)
	assert.Equal(t, employee.StatusResigned, updated.Status)
	require.NotNil(t, updated.ResignationDate)

	err = repo.Update(ctx, employee.UpdateEmployeeRequest{ID: uuid.New().String(), FullName: &newName})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
