package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/constants"
	"github.com/openhire/job-board-api/internal/dto"
	"github.com/openhire/job-board-api/internal/middleware"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
	"github.com/openhire/job-board-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// JobHandlerTestSuite defines the test suite for JobHandler
type JobHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *JobHandler
}

// SetupTest runs before each test
func (suite *JobHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.SeekerProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
		&models.Notification{},
	)
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	jobRepo := repository.NewJobRepository(suite.db)
	appRepo := repository.NewApplicationRepository(suite.db)

	authService := services.NewAuthService(userRepo)
	jobService := services.NewJobService(jobRepo, appRepo)
	suite.handler = NewJobHandler(jobService, authService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *JobHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *JobHandlerTestSuite) createUser(username string, role models.UserRole) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
		Role:         role,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	if role == models.RoleEmployer {
		suite.Require().NoError(suite.db.Create(&models.EmployerProfile{
			UserID:      user.ID,
			CompanyName: username + " Inc",
		}).Error)
	} else {
		suite.Require().NoError(suite.db.Create(&models.SeekerProfile{UserID: user.ID}).Error)
	}
	return user
}

type jobFixture struct {
	Title           string
	Description     string
	Requirements    string
	JobType         models.JobType
	ExperienceLevel models.ExperienceLevel
	Category        string
	Location        string
	Active          bool
	PostedAt        time.Time
}

func (suite *JobHandlerTestSuite) createJob(employerID uint64, fx jobFixture) *models.Job {
	job := &models.Job{
		EmployerID:      employerID,
		Title:           fx.Title,
		Description:     fx.Description,
		Requirements:    fx.Requirements,
		JobType:         fx.JobType,
		ExperienceLevel: fx.ExperienceLevel,
		Category:        fx.Category,
		Location:        fx.Location,
		IsActive:        fx.Active,
		CreatedAt:       fx.PostedAt,
	}
	if job.Description == "" {
		job.Description = "Work on things"
	}
	if job.Requirements == "" {
		job.Requirements = "Experience"
	}
	if job.JobType == "" {
		job.JobType = models.JobTypeFullTime
	}
	if job.ExperienceLevel == "" {
		job.ExperienceLevel = models.ExperienceMid
	}
	if job.Category == "" {
		job.Category = "Engineering"
	}
	if job.Location == "" {
		job.Location = "Berlin"
	}
	suite.Require().NoError(suite.db.Create(job).Error)
	return job
}

func (suite *JobHandlerTestSuite) search(query url.Values) dto.JobListResponse {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/jobs?"+query.Encode(), nil)

	suite.handler.SearchJobs(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response dto.JobListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *JobHandlerTestSuite) titles(response dto.JobListResponse) []string {
	titles := make([]string, len(response.Jobs))
	for i, job := range response.Jobs {
		titles[i] = job.Title
	}
	return titles
}

func (suite *JobHandlerTestSuite) TestSearchReturnsActiveJobsNewestFirst() {
	employer := suite.createUser("acme", models.RoleEmployer)
	base := time.Now().Add(-time.Hour)
	suite.createJob(employer.ID, jobFixture{Title: "Oldest", Active: true, PostedAt: base})
	suite.createJob(employer.ID, jobFixture{Title: "Hidden", Active: false, PostedAt: base.Add(10 * time.Minute)})
	suite.createJob(employer.ID, jobFixture{Title: "Middle", Active: true, PostedAt: base.Add(20 * time.Minute)})
	suite.createJob(employer.ID, jobFixture{Title: "Newest", Active: true, PostedAt: base.Add(30 * time.Minute)})

	response := suite.search(url.Values{})

	suite.Equal([]string{"Newest", "Middle", "Oldest"}, suite.titles(response))
	suite.Equal(int64(3), response.TotalCount)
}

func (suite *JobHandlerTestSuite) TestSearchFreeTextMatchesAnyTextColumn() {
	employer := suite.createUser("acme", models.RoleEmployer)
	now := time.Now()
	suite.createJob(employer.ID, jobFixture{
		Title: "Backend Engineer", Description: "APIs", Requirements: "SQL",
		Active: true, PostedAt: now.Add(-3 * time.Minute),
	})
	suite.createJob(employer.ID, jobFixture{
		Title: "Designer", Description: "Sketch Kubernetes dashboards", Requirements: "Figma",
		Active: true, PostedAt: now.Add(-2 * time.Minute),
	})
	suite.createJob(employer.ID, jobFixture{
		Title: "SRE", Description: "Keep it up", Requirements: "KUBERNETES, Terraform",
		Active: true, PostedAt: now.Add(-1 * time.Minute),
	})
	suite.createJob(employer.ID, jobFixture{
		Title: "Accountant", Description: "Books", Requirements: "Excel",
		Active: true, PostedAt: now,
	})

	// A single term matches title, description, or requirements,
	// regardless of case.
	response := suite.search(url.Values{"search": {"kubernetes"}})

	suite.Equal([]string{"SRE", "Designer"}, suite.titles(response))
}

func (suite *JobHandlerTestSuite) TestSearchFiltersCombine() {
	employer := suite.createUser("acme", models.RoleEmployer)
	now := time.Now()
	suite.createJob(employer.ID, jobFixture{
		Title: "Berlin Contract Go", JobType: models.JobTypeContract, Location: "Berlin, DE",
		Active: true, PostedAt: now.Add(-3 * time.Minute),
	})
	suite.createJob(employer.ID, jobFixture{
		Title: "Berlin Full-Time Go", JobType: models.JobTypeFullTime, Location: "Berlin, DE",
		Active: true, PostedAt: now.Add(-2 * time.Minute),
	})
	suite.createJob(employer.ID, jobFixture{
		Title: "Remote Contract Go", JobType: models.JobTypeContract, Location: "Anywhere",
		Active: true, PostedAt: now.Add(-1 * time.Minute),
	})

	response := suite.search(url.Values{
		"job_type": {"contract"},
		"location": {"berlin"},
	})

	suite.Equal([]string{"Berlin Contract Go"}, suite.titles(response))
}

func (suite *JobHandlerTestSuite) TestSearchByExperienceLevel() {
	employer := suite.createUser("acme", models.RoleEmployer)
	now := time.Now()
	suite.createJob(employer.ID, jobFixture{
		Title: "Junior Dev", ExperienceLevel: models.ExperienceEntry,
		Active: true, PostedAt: now.Add(-time.Minute),
	})
	suite.createJob(employer.ID, jobFixture{
		Title: "Staff Dev", ExperienceLevel: models.ExperienceSenior,
		Active: true, PostedAt: now,
	})

	response := suite.search(url.Values{"experience_level": {"senior"}})

	suite.Equal([]string{"Staff Dev"}, suite.titles(response))
}

func (suite *JobHandlerTestSuite) TestInactiveJobPersistsAsInactive() {
	employer := suite.createUser("acme", models.RoleEmployer)
	job := suite.createJob(employer.ID, jobFixture{Title: "Paused", Active: false, PostedAt: time.Now()})

	// A false value must survive the INSERT; a column default would
	// silently flip the row back to active.
	var stored models.Job
	suite.Require().NoError(suite.db.First(&stored, job.ID).Error)
	suite.False(stored.IsActive)
}

func (suite *JobHandlerTestSuite) TestSearchTreatsWildcardsAsLiterals() {
	employer := suite.createUser("acme", models.RoleEmployer)
	now := time.Now()
	suite.createJob(employer.ID, jobFixture{
		Title: "100% Remote Engineer", Active: true, PostedAt: now.Add(-2 * time.Minute),
	})
	suite.createJob(employer.ID, jobFixture{
		Title: "100 Days Program Lead", Active: true, PostedAt: now.Add(-time.Minute),
	})
	suite.createJob(employer.ID, jobFixture{
		Title: "snakeycase Framework Dev", Active: true, PostedAt: now.Add(-30 * time.Second),
	})
	suite.createJob(employer.ID, jobFixture{
		Title: "snake_case Linter Author", Active: true, PostedAt: now,
	})

	// '%' in the query is a literal percent sign, not match-anything.
	response := suite.search(url.Values{"search": {"100%"}})
	suite.Equal([]string{"100% Remote Engineer"}, suite.titles(response))

	// '_' is a literal underscore, not match-any-character.
	response = suite.search(url.Values{"search": {"snake_case"}})
	suite.Equal([]string{"snake_case Linter Author"}, suite.titles(response))
}

func (suite *JobHandlerTestSuite) TestSearchPagination() {
	employer := suite.createUser("acme", models.RoleEmployer)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		suite.createJob(employer.ID, jobFixture{
			Title:    fmt.Sprintf("Job %d", i),
			Active:   true,
			PostedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	response := suite.search(url.Values{"page": {"2"}, "limit": {"2"}})

	// Page 2 of size 2 over 5 jobs newest-first: the third and fourth.
	suite.Equal([]string{"Job 2", "Job 1"}, suite.titles(response))
	suite.Equal(int64(5), response.TotalCount)
	suite.Equal(2, response.Page)
	suite.Equal(2, response.PageSize)
	suite.Equal(3, response.TotalPages)
}

func (suite *JobHandlerTestSuite) TestCreateJobRequiresEmployerRole() {
	seeker := suite.createUser("sam", models.RoleSeeker)

	body, _ := json.Marshal(map[string]interface{}{
		"title":            "Backend Engineer",
		"description":      "APIs",
		"requirements":     "Go",
		"job_type":         "full-time",
		"experience_level": "mid",
		"category":         "Engineering",
		"location":         "Berlin",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/jobs", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(constants.ContextKeyUserID, seeker.ID)
	c.Set(constants.ContextKeyUserRole, string(seeker.Role))

	suite.handler.CreateJob(c)

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Job{}).Count(&count)
	suite.Zero(count)
}

func (suite *JobHandlerTestSuite) TestCreateJobRejectsUnknownJobType() {
	employer := suite.createUser("acme", models.RoleEmployer)

	body, _ := json.Marshal(map[string]interface{}{
		"title":            "Backend Engineer",
		"description":      "APIs",
		"requirements":     "Go",
		"job_type":         "gig",
		"experience_level": "mid",
		"category":         "Engineering",
		"location":         "Berlin",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/jobs", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(constants.ContextKeyUserID, employer.ID)
	c.Set(constants.ContextKeyUserRole, string(employer.Role))

	suite.handler.CreateJob(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *JobHandlerTestSuite) TestUpdateJobByNonOwnerForbidden() {
	owner := suite.createUser("acme", models.RoleEmployer)
	intruder := suite.createUser("globex", models.RoleEmployer)
	job := suite.createJob(owner.ID, jobFixture{Title: "Backend Engineer", Active: true, PostedAt: time.Now()})

	body, _ := json.Marshal(map[string]interface{}{"title": "Hijacked"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/jobs/%d", job.ID), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(job.ID)}}
	c.Set(constants.ContextKeyUserID, intruder.ID)
	c.Set(constants.ContextKeyUserRole, string(intruder.Role))

	suite.handler.UpdateJob(c)

	suite.Equal(http.StatusForbidden, w.Code)

	var stored models.Job
	suite.Require().NoError(suite.db.First(&stored, job.ID).Error)
	suite.Equal("Backend Engineer", stored.Title)
}

func (suite *JobHandlerTestSuite) TestDeleteJobRemovesItsApplications() {
	employer := suite.createUser("acme", models.RoleEmployer)
	seeker := suite.createUser("sam", models.RoleSeeker)
	other := suite.createUser("pat", models.RoleSeeker)

	target := suite.createJob(employer.ID, jobFixture{Title: "Doomed", Active: true, PostedAt: time.Now()})
	survivor := suite.createJob(employer.ID, jobFixture{Title: "Survivor", Active: true, PostedAt: time.Now()})

	for i, applicant := range []*models.User{seeker, other} {
		suite.Require().NoError(suite.db.Create(&models.Application{
			JobID:       target.ID,
			ApplicantID: applicant.ID,
			Reference:   fmt.Sprintf("target-%d", i),
			Status:      models.StatusPending,
		}).Error)
	}
	suite.Require().NoError(suite.db.Create(&models.Application{
		JobID:       survivor.ID,
		ApplicantID: seeker.ID,
		Reference:   "survivor-0",
		Status:      models.StatusPending,
	}).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/jobs/%d", target.ID), nil)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(target.ID)}}
	c.Set(constants.ContextKeyUserID, employer.ID)
	c.Set(constants.ContextKeyUserRole, string(employer.Role))

	suite.handler.DeleteJob(c)

	suite.Equal(http.StatusOK, w.Code)

	var jobCount, appCount int64
	suite.db.Model(&models.Job{}).Count(&jobCount)
	suite.db.Model(&models.Application{}).Count(&appCount)
	suite.Equal(int64(1), jobCount)
	suite.Equal(int64(1), appCount)

	var remaining models.Application
	suite.Require().NoError(suite.db.First(&remaining).Error)
	suite.Equal(survivor.ID, remaining.JobID)
}

func (suite *JobHandlerTestSuite) TestGetJobReportsHasApplied() {
	employer := suite.createUser("acme", models.RoleEmployer)
	seeker := suite.createUser("sam", models.RoleSeeker)
	job := suite.createJob(employer.ID, jobFixture{Title: "Backend Engineer", Active: true, PostedAt: time.Now()})

	suite.Require().NoError(suite.db.Create(&models.Application{
		JobID:       job.ID,
		ApplicantID: seeker.ID,
		Reference:   "ref-1",
		Status:      models.StatusPending,
	}).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/jobs/%d", job.ID), nil)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(job.ID)}}
	c.Set(constants.ContextKeyUserID, seeker.ID)

	suite.handler.GetJob(c)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Job        dto.JobDTO `json:"job"`
		HasApplied bool       `json:"has_applied"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(job.ID, response.Job.ID)
	suite.True(response.HasApplied)
}

// TestGetJobHasAppliedThroughSession exercises the public detail route the
// way main.go wires it: sessions middleware plus LoadIdentity, no RequireAuth.
// A logged-in seeker's session alone must be enough for has_applied.
func (suite *JobHandlerTestSuite) TestGetJobHasAppliedThroughSession() {
	employer := suite.createUser("acme", models.RoleEmployer)
	seeker := suite.createUser("sam", models.RoleSeeker)
	job := suite.createJob(employer.ID, jobFixture{Title: "Backend Engineer", Active: true, PostedAt: time.Now()})

	suite.Require().NoError(suite.db.Create(&models.Application{
		JobID:       job.ID,
		ApplicantID: seeker.ID,
		Reference:   "ref-1",
		Status:      models.StatusPending,
	}).Error)

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(constants.ContextKeyUserID, seeker.ID)
		session.Set(constants.ContextKeyUserRole, string(seeker.Role))
		suite.Require().NoError(session.Save())
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	r.GET("/api/jobs/:id", middleware.LoadIdentity(), suite.handler.GetJob)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	suite.Require().Equal(http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	suite.Require().NotEmpty(cookies)

	detailURL := fmt.Sprintf("/api/jobs/%d", job.ID)

	req := httptest.NewRequest(http.MethodGet, detailURL, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		HasApplied bool `json:"has_applied"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.HasApplied)

	// An anonymous viewer gets the job without the flag set.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, detailURL, nil))
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.False(response.HasApplied)
}

func TestJobHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(JobHandlerTestSuite))
}
