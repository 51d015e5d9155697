package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"gradebook/domain"
)

type settingUC struct {
	settingRepo  domain.SettingRepo
	semesterRepo domain.SemesterRepo
	logRepo      domain.ActivityLogRepo
	log          *logrus.Logger
	TimeOut      time.Duration
}

func NewSettingUseCase(
	settingRepo domain.SettingRepo,
	semesterRepo domain.SemesterRepo,
	logRepo domain.ActivityLogRepo,
	log *logrus.Logger,
	timeOut time.Duration,
) domain.SettingUseCase {
	return &settingUC{
		settingRepo:  settingRepo,
		semesterRepo: semesterRepo,
		logRepo:      logRepo,
		log:          log,
		TimeOut:      timeOut,
	}
}

// SetActiveSemester flips the process-wide input/reporting scope. It takes
// effect for the next request; readers always load it fresh.
func (sUC *settingUC) SetActiveSemester(ctx context.Context, actor *domain.Claims, semesterID int) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	semester, err := sUC.semesterRepo.GetSemesterByID(ctx, semesterID)
	if err != nil {
		return err
	}

	if err := sUC.settingRepo.SetActiveSemester(ctx, semesterID); err != nil {
		return err
	}

	sUC.RecordActivity(ctx, actor, "set_active_semester", fmt.Sprintf("activated %s %s", semester.Name, semester.AcademicYear))
	return nil
}

func (sUC *settingUC) GetAllSettings(ctx context.Context) (*[]domain.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.settingRepo.GetAllSettings(ctx)
}

func (sUC *settingUC) GetActivityLogs(ctx context.Context, page, perPage int) (*[]domain.ActivityLog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.logRepo.GetLogs(ctx, page, perPage)
}

// RecordActivity never fails the caller's operation; a lost log line is
// only worth a log line.
func (sUC *settingUC) RecordActivity(ctx context.Context, actor *domain.Claims, action, detail string) {
	entry := &domain.ActivityLog{
		UserID:   actor.UserID,
		Username: actor.Username,
		Action:   action,
		Detail:   detail,
	}
	if err := sUC.logRepo.InsertLog(ctx, entry); err != nil {
		sUC.log.Errorf("could not record activity %q: %v", action, err)
	}
}
