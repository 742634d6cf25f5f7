package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"project-roadmap-backend/internal/config"
	"project-roadmap-backend/internal/database"
	"project-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type PhaseData struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OrderIndex  int    `yaml:"order_index"`
	Color       string `yaml:"color"`
}

type StageTemplateData struct {
	Name             string `yaml:"name"`
	PhaseName        string `yaml:"phase_name"`
	OrganizationName string `yaml:"organization_name,omitempty"`
	Description      string `yaml:"description"`
	DurationDays     int    `yaml:"duration_days"`
	Position         int    `yaml:"position"`
}

type TaskBlueprintData struct {
	Title              string   `yaml:"title"`
	StageTemplateName  string   `yaml:"stage_template_name"`
	Description        string   `yaml:"description"`
	DurationDays       int      `yaml:"duration_days"`
	EstimatedHours     float64  `yaml:"estimated_hours"`
	RequiredCapability string   `yaml:"required_capability,omitempty"`
	Tags               []string `yaml:"tags,omitempty"`
	OrderIndex         int      `yaml:"order_index"`
}

type OrganizationData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Domain      string `yaml:"domain"`
	Description string `yaml:"description"`
}

// File structures
type PhasesFile struct {
	Phases []PhaseData `yaml:"phases"`
}

type StageTemplatesFile struct {
	StageTemplates []StageTemplateData `yaml:"stage_templates"`
}

type TaskBlueprintsFile struct {
	TaskBlueprints []TaskBlueprintData `yaml:"task_blueprints"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("🚀 Loading catalog data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Catalog data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	phases, err := loadPhases(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load phases: %w", err)
	}

	templates, err := loadStageTemplates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load stage templates: %w", err)
	}

	blueprints, err := loadTaskBlueprints(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load task blueprints: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create phases
	phaseMap := make(map[string]*models.Phase)
	phaseCreated := 0
	for _, phaseData := range phases {
		phase, created, err := createPhase(db, phaseData)
		if err != nil {
			return fmt.Errorf("failed to create phase %s: %w", phaseData.Name, err)
		}
		phaseMap[phaseData.Name] = phase
		if created {
			phaseCreated++
		}
	}
	log.Printf("📋 Phases: %d created, %d total", phaseCreated, len(phases))

	// Create stage templates
	templateMap := make(map[string]*models.StageTemplate)
	templateCreated := 0
	for _, templateData := range templates {
		template, created, err := createStageTemplate(db, templateData, phaseMap, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create stage template %s: %w", templateData.Name, err)
		}
		templateMap[templateData.Name] = template
		if created {
			templateCreated++
		}
	}
	log.Printf("📋 Stage templates: %d created, %d total", templateCreated, len(templates))

	// Create task blueprints
	blueprintCreated := 0
	for _, blueprintData := range blueprints {
		_, created, err := createTaskBlueprint(db, blueprintData, templateMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create task blueprint %s: %v", blueprintData.Title, err)
			continue // Continue with other blueprints
		}
		if created {
			blueprintCreated++
		}
	}
	log.Printf("📋 Task blueprints: %d created, %d total", blueprintCreated, len(blueprints))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadPhases(dataDir string) ([]PhaseData, error) {
	var allPhases []PhaseData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "phases") {
			var file PhasesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPhases = append(allPhases, file.Phases...)
		}
		return nil
	})

	return allPhases, err
}

func loadStageTemplates(dataDir string) ([]StageTemplateData, error) {
	var allTemplates []StageTemplateData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "stage_templates") {
			var file StageTemplatesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTemplates = append(allTemplates, file.StageTemplates...)
		}
		return nil
	})

	return allTemplates, err
}

func loadTaskBlueprints(dataDir string) ([]TaskBlueprintData, error) {
	var allBlueprints []TaskBlueprintData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "task_blueprints") {
			var file TaskBlueprintsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allBlueprints = append(allBlueprints, file.TaskBlueprints...)
		}
		return nil
	})

	return allBlueprints, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:        orgData.Name,
				DisplayName: orgData.DisplayName,
				Domain:      orgData.Domain,
				Description: orgData.Description,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createPhase(db *gorm.DB, phaseData PhaseData) (*models.Phase, bool, error) {
	var phase models.Phase
	if err := db.Where("name = ?", phaseData.Name).First(&phase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			phase = models.Phase{
				Name:        phaseData.Name,
				Title:       phaseData.Title,
				Description: phaseData.Description,
				OrderIndex:  phaseData.OrderIndex,
				Color:       phaseData.Color,
			}

			if err := db.Create(&phase).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create phase: %w", err)
			}
			return &phase, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query phase: %w", err)
		}
	}

	return &phase, false, nil // created = false (existing)
}

func createStageTemplate(db *gorm.DB, templateData StageTemplateData, phaseMap map[string]*models.Phase, orgMap map[string]*models.Organization) (*models.StageTemplate, bool, error) {
	phase := phaseMap[templateData.PhaseName]
	if phase == nil {
		return nil, false, fmt.Errorf("phase %s not found for stage template %s", templateData.PhaseName, templateData.Name)
	}

	var orgID *uuid.UUID
	if templateData.OrganizationName != "" {
		org := orgMap[templateData.OrganizationName]
		if org == nil {
			return nil, false, fmt.Errorf("organization %s not found for stage template %s", templateData.OrganizationName, templateData.Name)
		}
		orgID = &org.ID
	}

	var template models.StageTemplate
	if err := db.Where("name = ? AND phase_id = ?", templateData.Name, phase.ID).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			template = models.StageTemplate{
				OrganizationID: orgID,
				PhaseID:        phase.ID,
				Name:           templateData.Name,
				Description:    templateData.Description,
				DurationDays:   templateData.DurationDays,
				Position:       templateData.Position,
			}

			if err := db.Create(&template).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create stage template: %w", err)
			}
			return &template, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query stage template: %w", err)
		}
	}

	return &template, false, nil // created = false (existing)
}

func createTaskBlueprint(db *gorm.DB, blueprintData TaskBlueprintData, templateMap map[string]*models.StageTemplate) (*models.TaskBlueprint, bool, error) {
	template := templateMap[blueprintData.StageTemplateName]
	if template == nil {
		return nil, false, fmt.Errorf("stage template %s not found for task blueprint %s", blueprintData.StageTemplateName, blueprintData.Title)
	}

	var blueprint models.TaskBlueprint
	if err := db.Where("title = ? AND stage_template_id = ?", blueprintData.Title, template.ID).First(&blueprint).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			durationDays := blueprintData.DurationDays
			if durationDays == 0 {
				durationDays = 1
			}

			blueprint = models.TaskBlueprint{
				StageTemplateID:    template.ID,
				Title:              blueprintData.Title,
				Description:        blueprintData.Description,
				DurationDays:       durationDays,
				EstimatedHours:     blueprintData.EstimatedHours,
				RequiredCapability: blueprintData.RequiredCapability,
				Tags:               blueprintData.Tags,
				OrderIndex:         blueprintData.OrderIndex,
			}

			if err := db.Create(&blueprint).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create task blueprint: %w", err)
			}
			return &blueprint, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query task blueprint: %w", err)
		}
	}

	return &blueprint, false, nil // created = false (existing)
}
