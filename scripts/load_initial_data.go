package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"staffing-portal-backend/internal/config"
	"staffing-portal-backend/internal/database"
	"staffing-portal-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type LanguageData struct {
	Name string `yaml:"name"`
}

type WorkerData struct {
	Name       string  `yaml:"name"`
	Age        int     `yaml:"age"`
	Gender     string  `yaml:"gender"`
	BaseSalary float64 `yaml:"base_salary"`
	WorkerType string  `yaml:"worker_type"`

	// Programmer fields
	Category  string   `yaml:"category,omitempty"`
	Languages []string `yaml:"languages,omitempty"`

	// Leader fields
	ExperienceYears  int `yaml:"experience_years,omitempty"`
	DirectedProjects int `yaml:"directed_projects,omitempty"`
}

type ProjectData struct {
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	EstimatedTime int     `yaml:"estimated_time"`
	Price         float64 `yaml:"price"`
	ProjectType   string  `yaml:"type"`

	// Multimedia fields
	IsFlash    *bool `yaml:"is_flash,omitempty"`
	IsDirector *bool `yaml:"is_director,omitempty"`

	// Gestion fields
	DBType    string `yaml:"db_type,omitempty"`
	Language  string `yaml:"language,omitempty"`
	Framework string `yaml:"framework,omitempty"`
}

type TeamData struct {
	LeaderName  string   `yaml:"leader_name"`
	ProjectName string   `yaml:"project_name"`
	Programmers []string `yaml:"programmers,omitempty"`
}

type UserData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// File structures
type LanguagesFile struct {
	Languages []LanguageData `yaml:"languages"`
}

type WorkersFile struct {
	Workers []WorkerData `yaml:"workers"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

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

	log.Println("Initial data loaded successfully!")
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
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	languages, err := loadLanguages(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load languages: %w", err)
	}

	workers, err := loadWorkers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load workers: %w", err)
	}

	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	// Create languages first so programmers can reference them by name
	languageMap := make(map[string]*models.Language)
	languageCreated := 0
	for _, langData := range languages {
		lang, created, err := createLanguage(db, langData)
		if err != nil {
			return fmt.Errorf("failed to create language %s: %w", langData.Name, err)
		}
		languageMap[langData.Name] = lang
		if created {
			languageCreated++
		}
	}
	log.Printf("Languages: %d created, %d total", languageCreated, len(languages))

	// Create workers
	workerMap := make(map[string]*models.Worker)
	workerCreated := 0
	for _, workerData := range workers {
		worker, created, err := createWorker(db, workerData, languageMap)
		if err != nil {
			return fmt.Errorf("failed to create worker %s: %w", workerData.Name, err)
		}
		workerMap[workerData.Name] = worker
		if created {
			workerCreated++
		}
	}
	log.Printf("Workers: %d created, %d total", workerCreated, len(workers))

	// Create projects
	projectMap := make(map[string]*models.Project)
	projectCreated := 0
	for _, projectData := range projects {
		project, created, err := createProject(db, projectData)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Name, err)
		}
		projectMap[projectData.Name] = project
		if created {
			projectCreated++
		}
	}
	log.Printf("Projects: %d created, %d total", projectCreated, len(projects))

	// Create teams last, after their leader and project exist
	teamCreated := 0
	for _, teamData := range teams {
		created, err := createTeam(db, teamData, workerMap, projectMap)
		if err != nil {
			log.Printf("Warning: failed to create team for project %s: %v", teamData.ProjectName, err)
			continue
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	// Create users
	userCreated := 0
	for _, userData := range users {
		created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	return nil
}

func loadLanguages(dataDir string) ([]LanguageData, error) {
	var allLanguages []LanguageData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "languages") {
			var file LanguagesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLanguages = append(allLanguages, file.Languages...)
		}
		return nil
	})

	return allLanguages, err
}

func loadWorkers(dataDir string) ([]WorkerData, error) {
	var allWorkers []WorkerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "workers") {
			var file WorkersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allWorkers = append(allWorkers, file.Workers...)
		}
		return nil
	})

	return allWorkers, err
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "projects") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProjects = append(allProjects, file.Projects...)
		}
		return nil
	})

	return allProjects, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func createLanguage(db *gorm.DB, langData LanguageData) (*models.Language, bool, error) {
	var lang models.Language
	if err := db.Where("name = ?", langData.Name).First(&lang).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			lang = models.Language{Name: langData.Name}
			if err := db.Create(&lang).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create language: %w", err)
			}
			return &lang, true, nil
		}
		return nil, false, fmt.Errorf("failed to query language: %w", err)
	}

	return &lang, false, nil
}

func createWorker(db *gorm.DB, workerData WorkerData, languageMap map[string]*models.Language) (*models.Worker, bool, error) {
	workerType := models.WorkerType(workerData.WorkerType)
	if !workerType.IsValid() {
		return nil, false, fmt.Errorf("invalid worker type %q", workerData.WorkerType)
	}

	var worker models.Worker
	if err := db.Where("name = ? AND worker_type = ?", workerData.Name, workerType).First(&worker).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			worker = models.Worker{
				Name:       workerData.Name,
				Age:        workerData.Age,
				Gender:     workerData.Gender,
				BaseSalary: workerData.BaseSalary,
				WorkerType: workerType,
			}

			switch workerType {
			case models.WorkerTypeProgrammer:
				category := models.ProgrammerCategory(workerData.Category)
				if !category.IsValid() {
					return nil, false, fmt.Errorf("invalid programmer category %q", workerData.Category)
				}
				worker.Category = &category
				for _, name := range workerData.Languages {
					if lang := languageMap[name]; lang != nil {
						worker.Languages = append(worker.Languages, *lang)
					} else {
						log.Printf("Warning: language %s not found for worker %s", name, workerData.Name)
					}
				}
			case models.WorkerTypeLeader:
				experience := workerData.ExperienceYears
				directed := workerData.DirectedProjects
				worker.ExperienceYears = &experience
				worker.DirectedProjects = &directed
			}

			if err := db.Create(&worker).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create worker: %w", err)
			}
			return &worker, true, nil
		}
		return nil, false, fmt.Errorf("failed to query worker: %w", err)
	}

	return &worker, false, nil
}

func createProject(db *gorm.DB, projectData ProjectData) (*models.Project, bool, error) {
	projectType := models.ProjectType(projectData.ProjectType)
	if !projectType.IsValid() {
		return nil, false, fmt.Errorf("invalid project type %q", projectData.ProjectType)
	}

	var project models.Project
	if err := db.Where("name = ?", projectData.Name).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			project = models.Project{
				Name:          projectData.Name,
				Description:   projectData.Description,
				EstimatedTime: projectData.EstimatedTime,
				Price:         projectData.Price,
				ProjectType:   projectType,
			}

			switch projectType {
			case models.ProjectTypeMultimedia:
				project.IsFlash = projectData.IsFlash
				project.IsDirector = projectData.IsDirector
			case models.ProjectTypeGestion:
				if projectData.DBType != "" {
					project.DBType = &projectData.DBType
				}
				if projectData.Language != "" {
					project.Language = &projectData.Language
				}
				if projectData.Framework != "" {
					project.Framework = &projectData.Framework
				}
			}

			if err := db.Create(&project).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create project: %w", err)
			}
			return &project, true, nil
		}
		return nil, false, fmt.Errorf("failed to query project: %w", err)
	}

	return &project, false, nil
}

func createTeam(db *gorm.DB, teamData TeamData, workerMap map[string]*models.Worker, projectMap map[string]*models.Project) (bool, error) {
	leader := workerMap[teamData.LeaderName]
	if leader == nil || !leader.IsLeader() {
		return false, fmt.Errorf("leader %s not found", teamData.LeaderName)
	}

	project := projectMap[teamData.ProjectName]
	if project == nil {
		return false, fmt.Errorf("project %s not found", teamData.ProjectName)
	}

	var team models.Team
	if err := db.Where("project_id = ?", project.ID).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				ProjectID: &project.ID,
				LeaderID:  &leader.ID,
			}
			if err := db.Create(&team).Error; err != nil {
				return false, fmt.Errorf("failed to create team: %w", err)
			}

			for _, name := range teamData.Programmers {
				programmer := workerMap[name]
				if programmer == nil || !programmer.IsProgrammer() {
					log.Printf("Warning: programmer %s not found for team on %s", name, teamData.ProjectName)
					continue
				}
				if err := db.Model(&models.Worker{}).Where("id = ?", programmer.ID).
					Update("team_id", team.ID).Error; err != nil {
					log.Printf("Warning: failed to assign programmer %s: %v", name, err)
				}
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query team: %w", err)
	}

	return false, nil
}

func createUser(db *gorm.DB, userData UserData) (bool, error) {
	role := models.UserRole(userData.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("invalid user role %q", userData.Role)
	}

	var user models.User
	if err := db.Where("username = ?", userData.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return false, fmt.Errorf("failed to hash password: %w", err)
			}

			user = models.User{
				Username:     userData.Username,
				Email:        userData.Email,
				PasswordHash: string(hash),
				Role:         role,
				IsActive:     true,
			}
			if err := db.Create(&user).Error; err != nil {
				return false, fmt.Errorf("failed to create user: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	return false, nil
}
