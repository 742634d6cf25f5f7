package service

import (
	"errors"
	"fmt"
	"time"

	"project-roadmap-backend/internal/database/models"
	apperrors "project-roadmap-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SnapshotTask is a task as rendered in a roadmap snapshot
type SnapshotTask struct {
	ID                 uuid.UUID         `json:"id"`
	Title              string            `json:"title"`
	Status             models.TaskStatus `json:"status"`
	DurationDays       int               `json:"duration_days"`
	RequiredCapability string            `json:"required_capability,omitempty"`
	AssigneeID         *uuid.UUID        `json:"assignee_id,omitempty"`
	AutoAssigned       bool              `json:"auto_assigned"`
	Deadline           *time.Time        `json:"deadline,omitempty"`
}

// SnapshotStage is a project stage with its tasks
type SnapshotStage struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Status          models.StageStatus `json:"status"`
	OrderIndex      int                `json:"order_index"`
	TemplateStageID *uuid.UUID         `json:"template_stage_id,omitempty"`
	StartedAt       *time.Time         `json:"started_at,omitempty"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
	Tasks           []SnapshotTask     `json:"tasks"`
}

// SnapshotPhase is a catalog phase joined with the project's progression row
type SnapshotPhase struct {
	PhaseID     uuid.UUID          `json:"phase_id"`
	Name        string             `json:"name"`
	Title       string             `json:"title"`
	OrderIndex  int                `json:"order_index"`
	Status      models.StageStatus `json:"status"`
	StartedAt   *time.Time         `json:"started_at,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	Stages      []SnapshotStage    `json:"stages"`
}

// RoadmapSnapshot is the full progression view of one project
type RoadmapSnapshot struct {
	ProjectID uuid.UUID       `json:"project_id"`
	Phases    []SnapshotPhase `json:"phases"`
}

// GetRoadmapSnapshot returns the project's phases, stages, and tasks with
// statuses and deadlines, ordered the way the roadmap executes.
func (s *RoadmapService) GetRoadmapSnapshot(projectID uuid.UUID) (*RoadmapSnapshot, error) {
	repos := newRoadmapRepos(s.db)

	if _, err := repos.projects.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	statuses, err := repos.phaseStatuses.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phase statuses: %w", err)
	}
	if len(statuses) == 0 {
		return nil, apperrors.ErrRoadmapNotStarted
	}

	phases, err := repos.phases.ListOrdered()
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}
	phaseByID := make(map[uuid.UUID]models.Phase, len(phases))
	for _, p := range phases {
		phaseByID[p.ID] = p
	}

	stages, err := repos.stages.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	stagesByPhase := make(map[uuid.UUID][]models.ProjectStage)
	for _, st := range stages {
		stagesByPhase[st.PhaseID] = append(stagesByPhase[st.PhaseID], st)
	}

	snapshot := &RoadmapSnapshot{ProjectID: projectID}
	for _, status := range statuses {
		phase := phaseByID[status.PhaseID]
		sp := SnapshotPhase{
			PhaseID:     status.PhaseID,
			Name:        phase.Name,
			Title:       phase.Title,
			OrderIndex:  status.OrderIndex,
			Status:      status.Status,
			StartedAt:   status.StartedAt,
			CompletedAt: status.CompletedAt,
			Stages:      []SnapshotStage{},
		}

		for _, st := range stagesByPhase[status.PhaseID] {
			tasks, err := repos.tasks.ListByStage(st.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to list stage tasks: %w", err)
			}
			ss := SnapshotStage{
				ID:              st.ID,
				Name:            st.Name,
				Status:          st.Status,
				OrderIndex:      st.OrderIndex,
				TemplateStageID: st.TemplateStageID,
				StartedAt:       st.StartedAt,
				CompletedAt:     st.CompletedAt,
				Tasks:           make([]SnapshotTask, 0, len(tasks)),
			}
			for _, t := range tasks {
				ss.Tasks = append(ss.Tasks, SnapshotTask{
					ID:                 t.ID,
					Title:              t.Title,
					Status:             t.Status,
					DurationDays:       t.DurationDays,
					RequiredCapability: t.RequiredCapability,
					AssigneeID:         t.AssigneeID,
					AutoAssigned:       t.AutoAssigned,
					Deadline:           t.Deadline,
				})
			}
			sp.Stages = append(sp.Stages, ss)
		}

		snapshot.Phases = append(snapshot.Phases, sp)
	}

	return snapshot, nil
}
