package appointmentRepository

// Expected schema:
//
//	CREATE TABLE appointments (
//	    id                   SERIAL PRIMARY KEY,
//	    name                 TEXT NOT NULL,
//	    email                TEXT NOT NULL,
//	    phone                TEXT NOT NULL,
//	    age                  TEXT,
//	    gender               TEXT,
//	    reason               TEXT,
//	    doctor               TEXT NOT NULL,
//	    doctor_id            TEXT,
//	    appointment_date     TEXT NOT NULL,
//	    appointment_time     TEXT NOT NULL,
//	    medical_history_file TEXT
//	);
const (
	queryDeleteAllAppointments = `
		DELETE FROM appointments
	`

	queryInsertAppointment = `
		INSERT INTO appointments (
			name, email, phone, age, gender, reason,
			doctor, doctor_id, appointment_date, appointment_time, medical_history_file
		) VALUES (
			:name, :email, :phone, :age, :gender, :reason,
			:doctor, :doctor_id, :appointment_date, :appointment_time, :medical_history_file
		)
	`

	queryGetAllAppointments = `
		SELECT name, email, phone, age, gender, reason,
		       doctor, doctor_id, appointment_date, appointment_time, medical_history_file
		FROM appointments
		ORDER BY id
	`
)
