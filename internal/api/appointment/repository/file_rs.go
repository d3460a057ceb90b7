package appointmentRepository

import (
	"HealthcareGolang/internal/entity"
	contextPkg "HealthcareGolang/pkg/context"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileRepository struct {
	path string
	log  *logrus.Logger
}

// NewFileRepository stores the list as a single JSON file. Writes go through
// a temp file plus rename so a crash mid-write never truncates the document.
func NewFileRepository(path string, log *logrus.Logger) Repository {
	return &fileRepository{
		path: path,
		log:  log,
	}
}

func (r *fileRepository) Load(ctx context.Context) ([]entity.AppointmentRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       r.path,
			"error":      err.Error(),
		}).Error("Failed to read appointments file")
		return nil, err
	}

	var records []entity.AppointmentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       r.path,
			"error":      err.Error(),
		}).Error("Failed to decode appointments file")
		return nil, err
	}

	return records, nil
}

func (r *fileRepository) Save(ctx context.Context, records []entity.AppointmentRecord) error {
	if records == nil {
		records = []entity.AppointmentRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       r.path,
			"error":      err.Error(),
		}).Error("Failed to write appointments file")
		return err
	}

	if err := os.Rename(tmp, r.path); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       r.path,
			"error":      err.Error(),
		}).Error("Failed to replace appointments file")
		return err
	}

	return nil
}
