package recordsRepository

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
	historyPath    string
	medicationPath string
	log            *logrus.Logger
}

func NewFileRepository(historyPath, medicationPath string, log *logrus.Logger) Repository {
	return &fileRepository{
		historyPath:    historyPath,
		medicationPath: medicationPath,
		log:            log,
	}
}

func (r *fileRepository) LoadHistories(ctx context.Context) ([]entity.MedicalHistory, error) {
	var histories []entity.MedicalHistory
	if err := r.readDocument(ctx, r.historyPath, &histories); err != nil {
		return nil, err
	}
	return histories, nil
}

func (r *fileRepository) SaveHistories(ctx context.Context, histories []entity.MedicalHistory) error {
	if histories == nil {
		histories = []entity.MedicalHistory{}
	}
	return r.writeDocument(ctx, r.historyPath, histories)
}

func (r *fileRepository) LoadMedications(ctx context.Context) ([]entity.MedicationList, error) {
	var medications []entity.MedicationList
	if err := r.readDocument(ctx, r.medicationPath, &medications); err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *fileRepository) SaveMedications(ctx context.Context, medications []entity.MedicationList) error {
	if medications == nil {
		medications = []entity.MedicationList{}
	}
	return r.writeDocument(ctx, r.medicationPath, medications)
}

func (r *fileRepository) readDocument(ctx context.Context, path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       path,
			"error":      err.Error(),
		}).Error("Failed to read records file")
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       path,
			"error":      err.Error(),
		}).Error("Failed to decode records file")
		return err
	}

	return nil
}

func (r *fileRepository) writeDocument(ctx context.Context, path string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       path,
			"error":      err.Error(),
		}).Error("Failed to write records file")
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"path":       path,
			"error":      err.Error(),
		}).Error("Failed to replace records file")
		return err
	}

	return nil
}
