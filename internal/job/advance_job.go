package job

import (
	"project-roadmap-backend/internal/errors"
	"project-roadmap-backend/internal/logger"
	"project-roadmap-backend/internal/repository"
	"project-roadmap-backend/internal/service"

	"github.com/robfig/cron/v3"
)

// AdvanceJob periodically completes active stages whose tasks have all
// reached a terminal status. It covers roadmaps where the task tracker
// updates statuses without calling the completion endpoint.
type AdvanceJob struct {
	stageRepo      repository.ProjectStageRepositoryInterface
	roadmapService *service.RoadmapService
	cron           *cron.Cron
	spec           string
	log            *logger.Logger
}

// NewAdvanceJob creates a new advance job with the given cron spec
func NewAdvanceJob(stageRepo repository.ProjectStageRepositoryInterface, roadmapService *service.RoadmapService, spec string) *AdvanceJob {
	return &AdvanceJob{
		stageRepo:      stageRepo,
		roadmapService: roadmapService,
		cron:           cron.New(),
		spec:           spec,
		log:            logger.New().WithField("job", "roadmap_advance"),
	}
}

// Start schedules the job and begins running it
func (j *AdvanceJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}
	j.cron.Start()
	j.log.WithField("spec", j.spec).Info("advance poller started")
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (j *AdvanceJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.log.Info("advance poller stopped")
}

func (j *AdvanceJob) run() {
	ids, err := j.stageRepo.ListActiveIDs()
	if err != nil {
		j.log.WithError(err).Error("failed to list active stages")
		return
	}

	for _, id := range ids {
		done, err := j.roadmapService.AllTasksTerminal(id)
		if err != nil {
			j.log.WithError(err).WithField("stage_id", id).Warn("terminal check failed")
			continue
		}
		if !done {
			continue
		}

		result, err := j.roadmapService.CompleteStage(id)
		if err != nil {
			// Another caller may have completed the stage between the scan
			// and this call. Conflicts are retried on the next sweep.
			if errors.IsConcurrentModification(err) || errors.IsInvalidTransition(err) {
				j.log.WithError(err).WithField("stage_id", id).Debug("stage skipped")
				continue
			}
			j.log.WithError(err).WithField("stage_id", id).Error("auto-complete failed")
			continue
		}

		j.log.WithFields(map[string]interface{}{
			"stage_id": id,
			"advanced": string(result.Advanced),
		}).Info("stage auto-completed")
	}
}
