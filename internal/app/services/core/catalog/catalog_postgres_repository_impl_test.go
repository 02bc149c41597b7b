package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCatalogRepository(t *testing.T) (*catalogPostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &catalogPostgresRepository{DB: db, Log: zap.NewNop()}, mock
}

func TestCatalogPostgresRepository_FindDoctorServiceByID(t *testing.T) {
	columns := []string{"id", "doctor_id", "full_name", "clinic_id", "price", "id", "name", "description", "duration_minutes", "price"}

	t.Run("Price Override", func(t *testing.T) {
		repo, mock := newTestCatalogRepository(t)
		mock.ExpectQuery(`FROM doctor_services ds .* WHERE ds.id = \$1`).
			WithArgs("ds-1").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("ds-1", "doctor-1", "BS. Tran Binh", "clinic-1", int64(300000), "service-1", "Kham tong quat", "", 30, int64(200000)))

		doctorService, err := repo.FindDoctorServiceByID(context.Background(), "ds-1")

		require.NoError(t, err)
		require.NotNil(t, doctorService)
		assert.Equal(t, 30, doctorService.Service.DurationMinutes)
		assert.Equal(t, int64(300000), doctorService.EffectivePrice())
	})

	t.Run("No Override Falls Back To Service Price", func(t *testing.T) {
		repo, mock := newTestCatalogRepository(t)
		mock.ExpectQuery(`FROM doctor_services ds`).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("ds-1", "doctor-1", "BS. Tran Binh", "clinic-1", nil, "service-1", "Kham tong quat", "", 30, int64(200000)))

		doctorService, err := repo.FindDoctorServiceByID(context.Background(), "ds-1")

		require.NoError(t, err)
		assert.Nil(t, doctorService.PriceOverride)
		assert.Equal(t, int64(200000), doctorService.EffectivePrice())
	})

	t.Run("Missing", func(t *testing.T) {
		repo, mock := newTestCatalogRepository(t)
		mock.ExpectQuery(`FROM doctor_services ds`).WillReturnRows(sqlmock.NewRows(columns))

		doctorService, err := repo.FindDoctorServiceByID(context.Background(), "ds-404")

		assert.NoError(t, err)
		assert.Nil(t, doctorService)
	})
}

func TestCatalogPostgresRepository_FindWorkingHoursByDoctorServiceID(t *testing.T) {
	t.Run("Maps Weekday Numbers", func(t *testing.T) {
		repo, mock := newTestCatalogRepository(t)
		mock.ExpectQuery(`FROM doctor_service_working_hours`).
			WithArgs("ds-1").
			WillReturnRows(sqlmock.NewRows([]string{"doctor_service_id", "weekday", "start_time", "end_time"}).
				AddRow("ds-1", 1, "08:00", "17:00").
				AddRow("ds-1", 3, "13:00", "20:00"))

		hours, err := repo.FindWorkingHoursByDoctorServiceID(context.Background(), "ds-1")

		require.NoError(t, err)
		require.Len(t, hours, 2)
		assert.Equal(t, time.Monday, hours[0].Weekday)
		assert.Equal(t, time.Wednesday, hours[1].Weekday)
		assert.Equal(t, "20:00", hours[1].EndTime)
	})

	t.Run("Query Error", func(t *testing.T) {
		repo, mock := newTestCatalogRepository(t)
		mock.ExpectQuery(`FROM doctor_service_working_hours`).WillReturnError(errors.New("connection reset"))

		hours, err := repo.FindWorkingHoursByDoctorServiceID(context.Background(), "ds-1")

		assert.Error(t, err)
		assert.Nil(t, hours)
	})
}

func TestCatalogPostgresRepository_FindAllDoctors(t *testing.T) {
	columns := []string{"id", "clinic_id", "name", "full_name", "specialty", "description"}

	t.Run("Filtered By Clinic", func(t *testing.T) {
		repo, mock := newTestCatalogRepository(t)
		mock.ExpectQuery(`WHERE d.clinic_id = \$1`).
			WithArgs("clinic-1").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("doctor-1", "clinic-1", "Phong kham A", "BS. Tran Binh", "Noi", ""))

		doctors, err := repo.FindAllDoctors(context.Background(), "clinic-1")

		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Phong kham A", doctors[0].ClinicName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unfiltered", func(t *testing.T) {
		repo, mock := newTestCatalogRepository(t)
		mock.ExpectQuery(`FROM doctors d`).
			WillReturnRows(sqlmock.NewRows(columns))

		doctors, err := repo.FindAllDoctors(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, doctors)
	})
}
