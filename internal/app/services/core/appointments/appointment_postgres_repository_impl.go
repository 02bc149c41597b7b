package appointments

import (
	"context"
	"database/sql"
	"errors"
	"medbook-service/internal/app/contracts"
	"medbook-service/internal/app/models"
	"medbook-service/internal/pkg/constvars"
	"medbook-service/internal/pkg/exceptions"
	"medbook-service/internal/pkg/queries"
	"medbook-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

var postgresDialect = goqu.Dialect("postgres")

type appointmentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	appointmentPostgresRepositoryInstance contracts.AppointmentRepository
	onceAppointmentPostgresRepository     sync.Once
)

func NewAppointmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AppointmentRepository {
	onceAppointmentPostgresRepository.Do(func() {
		appointmentPostgresRepositoryInstance = &appointmentPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return appointmentPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

var appointmentSelectColumns = []interface{}{
	goqu.I("a.id"), goqu.I("a.doctor_service_id"), goqu.I("a.doctor_id"), goqu.I("a.patient_profile_id"), goqu.I("a.booked_by"),
	goqu.I("a.appointment_date"), goqu.L("to_char(a.start_time, 'HH24:MI')"), goqu.I("s.duration_minutes"),
	goqu.I("a.status"), goqu.I("a.payment_status"), goqu.I("a.price"), goqu.L("COALESCE(a.note, '')"),
	goqu.I("a.created_at"), goqu.I("a.updated_at"),
	goqu.I("d.full_name"), goqu.I("s.name"), goqu.I("c.name"), goqu.I("p.full_name"), goqu.I("p.user_id"),
}

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	var a models.Appointment
	err := row.Scan(
		&a.ID, &a.DoctorServiceID, &a.DoctorID, &a.PatientProfileID, &a.BookedBy,
		&a.AppointmentDate, &a.StartTime, &a.DurationMinutes,
		&a.Status, &a.PaymentStatus, &a.Price, &a.Note,
		&a.CreatedAt, &a.UpdatedAt,
		&a.DoctorName, &a.ServiceName, &a.ClinicName, &a.PatientName, &a.PatientOwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// filteredAppointments joins everything the list view shows and applies
// the non-empty filter fields.
func filteredAppointments(filter models.AppointmentFilter) *goqu.SelectDataset {
	ds := postgresDialect.From(goqu.T("appointments").As("a")).
		InnerJoin(goqu.T("doctor_services").As("ds"), goqu.On(goqu.I("ds.id").Eq(goqu.I("a.doctor_service_id")))).
		InnerJoin(goqu.T("services").As("s"), goqu.On(goqu.I("s.id").Eq(goqu.I("ds.service_id")))).
		InnerJoin(goqu.T("doctors").As("d"), goqu.On(goqu.I("d.id").Eq(goqu.I("a.doctor_id")))).
		InnerJoin(goqu.T("clinics").As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("d.clinic_id")))).
		InnerJoin(goqu.T("patient_profiles").As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("a.patient_profile_id"))))

	conditions := make([]exp.Expression, 0, 7)
	if filter.Status != "" {
		conditions = append(conditions, goqu.I("a.status").Eq(filter.Status))
	}
	if filter.PaymentStatus != "" {
		conditions = append(conditions, goqu.I("a.payment_status").Eq(filter.PaymentStatus))
	}
	if filter.DoctorID != "" {
		conditions = append(conditions, goqu.I("a.doctor_id").Eq(filter.DoctorID))
	}
	if filter.PatientProfileID != "" {
		conditions = append(conditions, goqu.I("a.patient_profile_id").Eq(filter.PatientProfileID))
	}
	if filter.OwnerUserID != "" {
		conditions = append(conditions, goqu.I("p.user_id").Eq(filter.OwnerUserID))
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, goqu.I("a.appointment_date").Gte(utils.FormatDate(*filter.DateFrom)))
	}
	if filter.DateTo != nil {
		conditions = append(conditions, goqu.I("a.appointment_date").Lte(utils.FormatDate(*filter.DateTo)))
	}

	return ds.Where(conditions...).Prepared(true)
}

func (r *appointmentPostgresRepository) FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ds := filteredAppointments(filter).
		Select(appointmentSelectColumns...).
		Order(goqu.I("a.appointment_date").Desc(), goqu.I("a.start_time").Asc(), goqu.I("a.id").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, exceptions.ErrBuildSQLQuery(err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.FindAll error querying",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSQLKey, query),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			r.Log.Error("appointmentPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		appointments = append(appointments, *appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("appointmentPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

func (r *appointmentPostgresRepository) Count(ctx context.Context, filter models.AppointmentFilter) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query, args, err := filteredAppointments(filter).Select(goqu.COUNT(goqu.Star())).ToSQL()
	if err != nil {
		return 0, exceptions.ErrBuildSQLQuery(err)
	}

	var total int
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.Count error counting",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (r *appointmentPostgresRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := scanAppointment(r.DB.QueryRowContext(ctx, queries.FindAppointmentByIDQuery, appointmentID))
	if err != nil {
		if err == sql.ErrNoRows {
			r.Log.Warn("appointmentPostgresRepository.FindByID no rows found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		r.Log.Error("appointmentPostgresRepository.FindByID error scanning row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointment, nil
}

func (r *appointmentPostgresRepository) FindBookedSlots(ctx context.Context, doctorID string, date time.Time) ([]models.BookedSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.FindBookedSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, utils.FormatDate(date)),
	)

	rows, err := r.DB.QueryContext(ctx, queries.FindBookedSlotsQuery, doctorID, utils.FormatDate(date))
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.FindBookedSlots error querying",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	slots := make([]models.BookedSlot, 0)
	for rows.Next() {
		var slot models.BookedSlot
		if err := rows.Scan(&slot.AppointmentID, &slot.StartTime, &slot.DurationMinutes, &slot.Status); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return slots, nil
}

func (r *appointmentPostgresRepository) CountByPatientProfileID(ctx context.Context, profileID string) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var count int
	err := r.DB.QueryRowContext(ctx, queries.CountAppointmentsByPatientProfileIDQuery, profileID).Scan(&count)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.CountByPatientProfileID error counting",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientProfileIDKey, profileID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Create maps a violation of the active-slot unique index to the
// slot-taken error.
func (r *appointmentPostgresRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
	)

	err := r.insertAppointment(ctx, r.DB, appointment)
	if err != nil {
		return err
	}

	r.Log.Info("appointmentPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}

// CreateWithPatientProfile inserts a new patient profile and the appointment
// booked for it in one transaction, so a rejected insert leaves no profile.
func (r *appointmentPostgresRepository) CreateWithPatientProfile(ctx context.Context, profile *models.PatientProfile, appointment *models.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.CreateWithPatientProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
	)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.CreateWithPatientProfile error beginning transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, queries.InsertPatientProfileQuery,
		profile.ID, profile.UserID, profile.FullName, profile.Relationship, profile.Gender,
		profile.DateOfBirth, profile.PhoneNumber, profile.InsuranceNumber, profile.Address,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.CreateWithPatientProfile error inserting patient profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}

	err = r.insertAppointment(ctx, tx, appointment)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		r.Log.Error("appointmentPostgresRepository.CreateWithPatientProfile error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBCommitTx(err)
	}

	r.Log.Info("appointmentPostgresRepository.CreateWithPatientProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPatientProfileIDKey, profile.ID),
	)
	return nil
}

func (r *appointmentPostgresRepository) insertAppointment(ctx context.Context, db queryRower, appointment *models.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := db.QueryRowContext(ctx, queries.InsertAppointmentQuery,
		appointment.ID, appointment.DoctorServiceID, appointment.DoctorID, appointment.PatientProfileID, appointment.BookedBy,
		utils.FormatDate(appointment.AppointmentDate), appointment.StartTime, appointment.Status, appointment.PaymentStatus,
		appointment.Price, appointment.Note,
	).Scan(&appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == queries.PostgresUniqueViolation {
			r.Log.Warn("appointmentPostgresRepository.insertAppointment slot already taken",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrSlotAlreadyBooked(err)
		}
		r.Log.Error("appointmentPostgresRepository.insertAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *appointmentPostgresRepository) Update(ctx context.Context, appointmentID string, patch models.AppointmentPatch) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if patch.IsEmpty() {
		return nil
	}

	query, args, err := buildUpdateQuery(appointmentID, patch)
	if err != nil {
		return exceptions.ErrBuildSQLQuery(err)
	}

	_, err = r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.Update error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSQLKey, query),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	r.Log.Info("appointmentPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (r *appointmentPostgresRepository) Delete(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("appointmentPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	_, err := r.DB.ExecContext(ctx, queries.DeleteAppointmentQuery, appointmentID)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.Delete error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

// buildUpdateQuery writes only the columns the patch carries.
func buildUpdateQuery(appointmentID string, patch models.AppointmentPatch) (string, []interface{}, error) {
	record := goqu.Record{"updated_at": goqu.L("NOW()")}
	if patch.Status != nil {
		record["status"] = *patch.Status
	}
	if patch.PaymentStatus != nil {
		record["payment_status"] = *patch.PaymentStatus
	}
	if patch.Note != nil {
		record["note"] = *patch.Note
	}

	return postgresDialect.Update(queries.TableAppointments).
		Set(record).
		Where(goqu.Ex{"id": appointmentID}).
		Prepared(true).
		ToSQL()
}
