package appointmentRepository

import (
	"HealthcareGolang/internal/entity"
	contextPkg "HealthcareGolang/pkg/context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type AppointmentDB struct {
	Name               sql.NullString `db:"name"`
	Email              sql.NullString `db:"email"`
	Phone              sql.NullString `db:"phone"`
	Age                sql.NullString `db:"age"`
	Gender             sql.NullString `db:"gender"`
	Reason             sql.NullString `db:"reason"`
	Doctor             sql.NullString `db:"doctor"`
	DoctorID           sql.NullString `db:"doctor_id"`
	AppointmentDate    sql.NullString `db:"appointment_date"`
	AppointmentTime    sql.NullString `db:"appointment_time"`
	MedicalHistoryFile sql.NullString `db:"medical_history_file"`
}

type postgresRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

// NewPostgresRepository keeps the document semantics on a relational store:
// Save runs delete-all plus insert-all inside one transaction, so the table
// always mirrors the full in-memory list.
func NewPostgresRepository(db *sqlx.DB, log *logrus.Logger) Repository {
	return &postgresRepository{
		db:  db,
		log: log,
	}
}

func (r *postgresRepository) Load(ctx context.Context) ([]entity.AppointmentRecord, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var rows []AppointmentDB
	if err := r.db.SelectContext(ctx, &rows, queryGetAllAppointments); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when loading appointments")
		return nil, err
	}

	records := make([]entity.AppointmentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, entity.AppointmentRecord{
			Name:               row.Name.String,
			Email:              row.Email.String,
			Phone:              row.Phone.String,
			Age:                row.Age.String,
			Gender:             row.Gender.String,
			Reason:             row.Reason.String,
			Doctor:             row.Doctor.String,
			DoctorID:           row.DoctorID.String,
			AppointmentDate:    row.AppointmentDate.String,
			AppointmentTime:    row.AppointmentTime.String,
			MedicalHistoryFile: row.MedicalHistoryFile.String,
		})
	}

	return records, nil
}

func (r *postgresRepository) Save(ctx context.Context, records []entity.AppointmentRecord) error {
	requestID := contextPkg.GetRequestID(ctx)

	tx, err := r.db.Beginx()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to begin appointments transaction")
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, queryDeleteAllAppointments); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when clearing appointments")
		return err
	}

	for _, rec := range records {
		argsKV := map[string]interface{}{
			"name":                 rec.Name,
			"email":                rec.Email,
			"phone":                rec.Phone,
			"age":                  rec.Age,
			"gender":               rec.Gender,
			"reason":               rec.Reason,
			"doctor":               rec.Doctor,
			"doctor_id":            rec.DoctorID,
			"appointment_date":     rec.AppointmentDate,
			"appointment_time":     rec.AppointmentTime,
			"medical_history_file": rec.MedicalHistoryFile,
		}

		query, args, err := sqlx.Named(queryInsertAppointment, argsKV)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to build SQL query for Save")
			return err
		}
		query = tx.Rebind(query)

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Database error when inserting appointment")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit appointments transaction")
		return err
	}

	return nil
}
